package banner

import (
	"fmt"
	"strings"
)

// StructureError means a fetched page does not look like the page banner
// normally serves, the layout assumptions of this package no longer hold.
type StructureError struct {
	Page   string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Page == "" {
		return fmt.Sprintf("unexpected page structure: %s", e.Reason)
	}
	return fmt.Sprintf("unexpected page structure on '%s': %s", e.Page, e.Reason)
}

// InvalidSelectionError means a value given for a field is not one of the
// options the form offers for it.
type InvalidSelectionError struct {
	Field       string
	Value       string
	Suggestions []string
}

func (e *InvalidSelectionError) Error() string {
	msg := fmt.Sprintf("invalid %s '%s'", FieldKind(e.Field), e.Value)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// AmbiguousSelectionError means a label was given for a field but more than
// one option carries that label.
type AmbiguousSelectionError struct {
	Field string
	Label string
	Codes []string
}

func (e *AmbiguousSelectionError) Error() string {
	return fmt.Sprintf(
		"ambiguous %s '%s': matches codes %s",
		FieldKind(e.Field), e.Label, strings.Join(e.Codes, ", "),
	)
}

var fieldKinds = map[string]string{
	FieldTerm:              "term",
	FieldDay:               "day",
	FieldSubject:           "subject",
	FieldAttribute:         "attribute",
	FieldScheduleType:      "schedule type",
	FieldCampus:            "campus",
	FieldInstructionMethod: "instruction method",
	FieldPartOfTerm:        "part of term",
	FieldLevel:             "level",
	FieldInstructor:        "instructor",
	FieldSeat:              "seat status",
	FieldBeginHour:         "begin time",
	FieldEndHour:           "end time",
}

// FieldKind returns the human name of a form field, or the field name itself.
func FieldKind(field string) string {
	kind, ok := fieldKinds[field]
	if !ok {
		return field
	}
	return kind
}
