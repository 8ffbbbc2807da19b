package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FloodStatus is the reported severity of flooding at an address.
type FloodStatus string

const (
	FloodStatusNormal FloodStatus = "normal"
	FloodStatusWatch  FloodStatus = "watch"
	FloodStatusDanger FloodStatus = "danger"
)

func (s FloodStatus) Valid() bool {
	switch s {
	case FloodStatusNormal, FloodStatusWatch, FloodStatusDanger:
		return true
	}
	return false
}

// UrgencyLevel is how urgently a help request needs a response.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

const (
	MaxNameLength = 100
	PhoneDigits   = 10

	// AssessmentDateLayout is the canonical storage format for assessment dates.
	AssessmentDateLayout = "2006-01-02"
)

// MaxPropertyDamage is the largest accepted damage amount, in the local currency.
var MaxPropertyDamage = decimal.NewFromInt(1_000_000)

type FloodReport struct {
	Id           int64       `json:"id"`
	ReporterName string      `json:"reporterName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Address      string      `json:"address"`
	FloodStatus  FloodStatus `json:"floodStatus"`
	ImagePath    string      `json:"imagePath,omitempty"`
	CreatedAt    string      `json:"createdAt,omitempty"`
}

type HelpRequest struct {
	Id                int64        `json:"id"`
	ReporterName      string       `json:"reporterName"`
	PhoneNumber       string       `json:"phoneNumber"`
	Address           string       `json:"address"`
	HelpTypes         []string     `json:"helpTypes"`
	UrgencyLevel      UrgencyLevel `json:"urgencyLevel"`
	AdditionalDetails string       `json:"additionalDetails,omitempty"`
	CreatedAt         string       `json:"createdAt,omitempty"`
}

type DamageReport struct {
	Id                int64           `json:"id"`
	ReporterName      string          `json:"reporterName"`
	PhoneNumber       string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	AssessmentDate    string          `json:"assessmentDate"`
	DamageList        string          `json:"damageList"`
	PropertyDamage    decimal.Decimal `json:"propertyDamage"`
	LifeImpact        string          `json:"lifeImpact,omitempty"`
	AdditionalNotes   string          `json:"additionalNotes,omitempty"`
	AdditionalDetails string          `json:"additionalDetails,omitempty"`
	CreatedAt         string          `json:"createdAt,omitempty"`
}

// FieldErrors maps a field name to a human-readable validation message.
type FieldErrors map[string]string

// Length bounds count characters, not bytes; Thai names run three bytes
// per character.
func ValidReporterName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= MaxNameLength
}

func ValidPhoneNumber(phone string) bool {
	if len(phone) != PhoneDigits {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseAssessmentDate accepts a calendar date or an RFC 3339 timestamp and
// returns the date part in canonical form.
func ParseAssessmentDate(value string) (string, bool) {
	for _, layout := range []string{AssessmentDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(AssessmentDateLayout), true
		}
	}
	return "", false
}

func PropertyDamageInRange(amount decimal.Decimal) bool {
	return amount.Sign() >= 0 && amount.LessThanOrEqual(MaxPropertyDamage)
}
