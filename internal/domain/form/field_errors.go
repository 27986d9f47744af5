// Package form implements the onboarding section schemas and their registry.
// Validation here is pure and total: the same raw input always yields the
// same result, and no I/O is performed.
package form

import "strings"

// Validation failure reasons, one per rule family.
const (
	// ReasonMissing marks a required field absent from the input.
	ReasonMissing = "missing"
	// ReasonWrongType marks a field whose raw value has the wrong type,
	// e.g. a string where a literal boolean is required.
	ReasonWrongType = "wrong_type"
	// ReasonInvalidFormat marks a field that failed a format check such as
	// email syntax or routing number shape.
	ReasonInvalidFormat = "invalid_format"
	// ReasonNotAllowed marks a field whose value is outside its enumerated
	// set of accepted values.
	ReasonNotAllowed = "not_allowed"
)

// FieldError describes one offending field of a section submission.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FieldErrors enumerates every offending field of one section submission.
// It implements error so schema failures can flow through error returns.
type FieldErrors []FieldError

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "no field errors"
	}

	var sb strings.Builder
	sb.WriteString("field validation failed: ")
	for i, f := range fe {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Field)
		sb.WriteString(" (")
		sb.WriteString(f.Reason)
		sb.WriteString(")")
	}

	return sb.String()
}

// Fields returns the offending field names in reported order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, len(fe))
	for i, f := range fe {
		fields[i] = f.Field
	}

	return fields
}

// Has reports whether a specific field is in the failure set.
func (fe FieldErrors) Has(field string) bool {
	for _, f := range fe {
		if f.Field == field {
			return true
		}
	}

	return false
}
