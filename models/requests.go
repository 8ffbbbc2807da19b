package models

import "github.com/shopspring/decimal"

// DeleteArgs identifies the record a delete call targets.
type DeleteArgs struct {
	Id int64 `json:"id"`
}

// HelpRequestArgs carries a create or sparse-update payload for help requests.
// Pointer fields distinguish "absent" from "present but empty": absent fields
// are left untouched on update, present fields are validated and applied.
type HelpRequestArgs struct {
	Id                int64     `json:"id,omitempty"`
	ReporterName      *string   `json:"reporterName"`
	PhoneNumber       *string   `json:"phoneNumber"`
	Address           *string   `json:"address"`
	HelpTypes         *[]string `json:"helpTypes"`
	UrgencyLevel      *string   `json:"urgencyLevel"`
	AdditionalDetails *string   `json:"additionalDetails"`
}

// MissingRequired reports whether any field a create needs is absent.
func (a *HelpRequestArgs) MissingRequired() bool {
	return a.ReporterName == nil || a.PhoneNumber == nil || a.Address == nil ||
		a.HelpTypes == nil || a.UrgencyLevel == nil
}

// Validate checks the format of every supplied field.
func (a *HelpRequestArgs) Validate() FieldErrors {
	errs := FieldErrors{}
	if a.ReporterName != nil && !ValidReporterName(*a.ReporterName) {
		errs["reporterName"] = "reporter name must be 1-100 characters"
	}
	if a.PhoneNumber != nil && !ValidPhoneNumber(*a.PhoneNumber) {
		errs["phoneNumber"] = "phone number must be exactly 10 digits"
	}
	if a.Address != nil && *a.Address == "" {
		errs["address"] = "address must not be empty"
	}
	if a.HelpTypes != nil && len(*a.HelpTypes) == 0 {
		errs["helpTypes"] = "at least one help type is required"
	}
	if a.UrgencyLevel != nil && !UrgencyLevel(*a.UrgencyLevel).Valid() {
		errs["urgencyLevel"] = "urgency level must be one of low, medium, high, critical"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Record builds a full record from a validated create payload.
func (a *HelpRequestArgs) Record() *HelpRequest {
	r := &HelpRequest{
		ReporterName: *a.ReporterName,
		PhoneNumber:  *a.PhoneNumber,
		Address:      *a.Address,
		HelpTypes:    *a.HelpTypes,
		UrgencyLevel: UrgencyLevel(*a.UrgencyLevel),
	}
	if a.AdditionalDetails != nil {
		r.AdditionalDetails = *a.AdditionalDetails
	}
	return r
}

// DamageReportArgs carries a create or sparse-update payload for damage
// reports. The canonical damageList shape is free text; array payloads fail
// to decode and are rejected at the boundary.
type DamageReportArgs struct {
	Id                int64            `json:"id,omitempty"`
	ReporterName      *string          `json:"reporterName"`
	PhoneNumber       *string          `json:"phoneNumber"`
	Address           *string          `json:"address"`
	AssessmentDate    *string          `json:"assessmentDate"`
	DamageList        *string          `json:"damageList"`
	PropertyDamage    *decimal.Decimal `json:"propertyDamage"`
	LifeImpact        *string          `json:"lifeImpact"`
	AdditionalNotes   *string          `json:"additionalNotes"`
	AdditionalDetails *string          `json:"additionalDetails"`
}

func (a *DamageReportArgs) MissingRequired() bool {
	return a.ReporterName == nil || a.PhoneNumber == nil || a.Address == nil ||
		a.AssessmentDate == nil || a.DamageList == nil || a.PropertyDamage == nil
}

func (a *DamageReportArgs) Validate() FieldErrors {
	errs := FieldErrors{}
	if a.ReporterName != nil && !ValidReporterName(*a.ReporterName) {
		errs["reporterName"] = "reporter name must be 1-100 characters"
	}
	if a.PhoneNumber != nil && !ValidPhoneNumber(*a.PhoneNumber) {
		errs["phoneNumber"] = "phone number must be exactly 10 digits"
	}
	if a.Address != nil && *a.Address == "" {
		errs["address"] = "address must not be empty"
	}
	if a.AssessmentDate != nil {
		if _, ok := ParseAssessmentDate(*a.AssessmentDate); !ok {
			errs["assessmentDate"] = "assessment date must be a valid calendar date"
		}
	}
	if a.DamageList != nil && *a.DamageList == "" {
		errs["damageList"] = "damage list must not be empty"
	}
	if a.PropertyDamage != nil && !PropertyDamageInRange(*a.PropertyDamage) {
		errs["propertyDamage"] = "property damage must be between 0 and 1,000,000"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (a *DamageReportArgs) Record() *DamageReport {
	date, _ := ParseAssessmentDate(*a.AssessmentDate)
	r := &DamageReport{
		ReporterName:   *a.ReporterName,
		PhoneNumber:    *a.PhoneNumber,
		Address:        *a.Address,
		AssessmentDate: date,
		DamageList:     *a.DamageList,
		PropertyDamage: *a.PropertyDamage,
	}
	if a.LifeImpact != nil {
		r.LifeImpact = *a.LifeImpact
	}
	if a.AdditionalNotes != nil {
		r.AdditionalNotes = *a.AdditionalNotes
	}
	if a.AdditionalDetails != nil {
		r.AdditionalDetails = *a.AdditionalDetails
	}
	return r
}

// FloodReportArgs carries a create or sparse-update payload for flood reports.
// It is populated from multipart form parts; part presence maps to non-nil
// pointers. ImagePath is set by the handler after a successful file write.
type FloodReportArgs struct {
	Id           int64
	ReporterName *string
	PhoneNumber  *string
	Address      *string
	FloodStatus  *string
	ImagePath    *string
}

func (a *FloodReportArgs) MissingRequired() bool {
	return a.ReporterName == nil || a.PhoneNumber == nil || a.Address == nil ||
		a.FloodStatus == nil
}

func (a *FloodReportArgs) Validate() FieldErrors {
	errs := FieldErrors{}
	if a.ReporterName != nil && !ValidReporterName(*a.ReporterName) {
		errs["reporterName"] = "reporter name must be 1-100 characters"
	}
	if a.PhoneNumber != nil && !ValidPhoneNumber(*a.PhoneNumber) {
		errs["phoneNumber"] = "phone number must be exactly 10 digits"
	}
	if a.Address != nil && *a.Address == "" {
		errs["address"] = "address must not be empty"
	}
	if a.FloodStatus != nil && !FloodStatus(*a.FloodStatus).Valid() {
		errs["floodStatus"] = "flood status must be one of normal, watch, danger"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (a *FloodReportArgs) Record() *FloodReport {
	r := &FloodReport{
		ReporterName: *a.ReporterName,
		PhoneNumber:  *a.PhoneNumber,
		Address:      *a.Address,
		FloodStatus:  FloodStatus(*a.FloodStatus),
	}
	if a.ImagePath != nil {
		r.ImagePath = *a.ImagePath
	}
	return r
}
