package form

import (
	"floodwatch/models"

	"github.com/shopspring/decimal"
)

// Definition describes one report form: its draft key, the server resource
// it submits to, and the step schemas gating each screen.
type Definition struct {
	Key        string
	Resource   string
	Multipart  bool
	ImageField string
	Steps      []Step
}

func contactStep() Step {
	return Step{
		Title: "Contact",
		Fields: []Field{
			{Name: "reporterName", Kind: Text, Required: true, MaxLen: models.MaxNameLength},
			{Name: "phoneNumber", Kind: Phone, Required: true},
			{Name: "address", Kind: Text, Required: true},
		},
	}
}

// FloodReportForm reports the flood status at an address, optionally with a
// photo. The image field holds a local file path until submission.
func FloodReportForm() Definition {
	return Definition{
		Key:        "floodreport",
		Resource:   "flood_reports",
		Multipart:  true,
		ImageField: "image",
		Steps: []Step{
			contactStep(),
			{
				Title: "Situation",
				Fields: []Field{
					{Name: "floodStatus", Kind: Choice, Required: true,
						Choices: []string{"normal", "watch", "danger"}},
					{Name: "image", Kind: Text},
				},
			},
		},
	}
}

func HelpRequestForm() Definition {
	return Definition{
		Key:      "helprequest",
		Resource: "help_requests",
		Steps: []Step{
			contactStep(),
			{
				Title: "Needs",
				Fields: []Field{
					{Name: "helpTypes", Kind: MultiChoice, Required: true},
					{Name: "urgencyLevel", Kind: Choice, Required: true,
						Choices: []string{"low", "medium", "high", "critical"}},
					{Name: "additionalDetails", Kind: Text},
				},
			},
		},
	}
}

func DamageReportForm() Definition {
	return Definition{
		Key:      "damagereport",
		Resource: "damage_reports",
		Steps: []Step{
			contactStep(),
			{
				Title: "Assessment",
				Fields: []Field{
					{Name: "assessmentDate", Kind: Date, Required: true},
					{Name: "damageList", Kind: Text, Required: true},
				},
			},
			{
				Title: "Impact",
				Fields: []Field{
					{Name: "propertyDamage", Kind: Amount, Required: true,
						Min: decimal.Zero, Max: models.MaxPropertyDamage},
					{Name: "lifeImpact", Kind: Text},
					{Name: "additionalNotes", Kind: Text},
					{Name: "additionalDetails", Kind: Text},
				},
			},
		},
	}
}
