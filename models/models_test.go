package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidReporterName(t *testing.T) {
	testCases := []struct {
		name  string
		valid bool
	}{
		{"Somchai", true},
		// Thai characters are three bytes each; the bound counts characters.
		{strings.Repeat("ก", 50), true},
		{strings.Repeat("ก", 100), true},
		{strings.Repeat("ก", 101), false},
		{strings.Repeat("a", 101), false},
		{"", false},
	}
	for _, testCase := range testCases {
		if got := ValidReporterName(testCase.name); got != testCase.valid {
			t.Errorf("ValidReporterName(%d chars) = %v", len([]rune(testCase.name)), got)
		}
	}
}

func TestValidPhoneNumber(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"0812345678", true},
		{"12345", false},
		{"081234567a", false},
		{"08123456789", false},
		{"", false},
	}
	for _, testCase := range testCases {
		if got := ValidPhoneNumber(testCase.phone); got != testCase.valid {
			t.Errorf("ValidPhoneNumber(%q) = %v", testCase.phone, got)
		}
	}
}

func TestParseAssessmentDate(t *testing.T) {
	if date, ok := ParseAssessmentDate("2025-11-02"); !ok || date != "2025-11-02" {
		t.Errorf("plain date: %q, %v", date, ok)
	}
	if date, ok := ParseAssessmentDate("2025-11-02T15:04:05Z"); !ok || date != "2025-11-02" {
		t.Errorf("timestamp: %q, %v", date, ok)
	}
	if _, ok := ParseAssessmentDate("soon"); ok {
		t.Error("expected parse failure")
	}
}

func TestPropertyDamageInRange(t *testing.T) {
	if !PropertyDamageInRange(decimal.Zero) || !PropertyDamageInRange(MaxPropertyDamage) {
		t.Error("bounds are inclusive")
	}
	if PropertyDamageInRange(decimal.NewFromInt(-1)) {
		t.Error("negative amounts are out of range")
	}
	if PropertyDamageInRange(MaxPropertyDamage.Add(decimal.NewFromInt(1))) {
		t.Error("amounts over the cap are out of range")
	}
}

func TestHelpRequestArgsPresence(t *testing.T) {
	name := "Somchai"
	phone := "0812345678"
	address := "12 Riverside Rd"
	types := []string{"food"}
	urgency := "high"

	complete := &HelpRequestArgs{
		ReporterName: &name,
		PhoneNumber:  &phone,
		Address:      &address,
		HelpTypes:    &types,
		UrgencyLevel: &urgency,
	}
	if complete.MissingRequired() {
		t.Error("complete args reported missing fields")
	}
	if errs := complete.Validate(); errs != nil {
		t.Errorf("complete args invalid: %v", errs)
	}

	missing := &HelpRequestArgs{ReporterName: &name}
	if !missing.MissingRequired() {
		t.Error("absent fields not reported")
	}

	// Present-but-empty is a validation error, not a skip.
	empty := ""
	patch := &HelpRequestArgs{Address: &empty}
	if errs := patch.Validate(); errs["address"] == "" {
		t.Errorf("empty address accepted: %v", errs)
	}
}
