package form

import (
	"fmt"
	"unicode/utf8"

	"floodwatch/models"

	"github.com/shopspring/decimal"
)

// FieldKind selects the validation and coercion rule for one form field.
type FieldKind int

const (
	Text FieldKind = iota
	Phone
	Choice
	MultiChoice
	Date
	Amount
)

type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	MaxLen   int             // Text; 0 means unbounded
	Choices  []string        // Choice
	Min, Max decimal.Decimal // Amount, inclusive
}

// Step is the subset of a form's fields entered on one screen.
type Step struct {
	Title  string
	Fields []Field
}

// Validate checks user input against the step schema. It returns either the
// coerced fields or a per-field error map, never both and never a partial
// result: one bad field fails the whole step.
func (s Step) Validate(input Draft) (Draft, models.FieldErrors) {
	out := Draft{}
	errs := models.FieldErrors{}

	for _, f := range s.Fields {
		value, present := input[f.Name]
		switch f.Kind {
		case Text:
			str, _ := value.(string)
			if str == "" {
				if f.Required {
					errs[f.Name] = fmt.Sprintf("%s is required", f.Name)
				}
				continue
			}
			if f.MaxLen > 0 && utf8.RuneCountInString(str) > f.MaxLen {
				errs[f.Name] = fmt.Sprintf("%s must be at most %d characters", f.Name, f.MaxLen)
				continue
			}
			out[f.Name] = str

		case Phone:
			str, _ := value.(string)
			if !models.ValidPhoneNumber(str) {
				errs[f.Name] = "phone number must be exactly 10 digits"
				continue
			}
			out[f.Name] = str

		case Choice:
			str, _ := value.(string)
			if !contains(f.Choices, str) {
				errs[f.Name] = fmt.Sprintf("please select a %s", f.Name)
				continue
			}
			out[f.Name] = str

		case MultiChoice:
			selected := stringSlice(value)
			if len(selected) == 0 {
				errs[f.Name] = fmt.Sprintf("select at least one %s", f.Name)
				continue
			}
			out[f.Name] = selected

		case Date:
			str, _ := value.(string)
			date, ok := models.ParseAssessmentDate(str)
			if !ok {
				errs[f.Name] = fmt.Sprintf("%s must be a valid date", f.Name)
				continue
			}
			out[f.Name] = date

		case Amount:
			amount, ok := toDecimal(value)
			if !ok {
				if !present {
					if f.Required {
						errs[f.Name] = fmt.Sprintf("%s is required", f.Name)
					}
					continue
				}
				errs[f.Name] = fmt.Sprintf("%s must be a number", f.Name)
				continue
			}
			if amount.LessThan(f.Min) || amount.GreaterThan(f.Max) {
				errs[f.Name] = fmt.Sprintf("%s must be between %s and %s", f.Name, f.Min, f.Max)
				continue
			}
			// Stored as a string so the value survives draft persistence.
			out[f.Name] = amount.String()
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		if v == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}
