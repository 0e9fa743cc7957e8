package builder

import (
	"fmt"
	"strings"
)

// UnknownFieldError reports a Set or Get against a field the schema does
// not declare.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// FieldAlreadySetError reports a second Set of a required field. Required
// fields are set-once; the first recorded value is kept.
type FieldAlreadySetError struct {
	Field string
}

func (e *FieldAlreadySetError) Error() string {
	return fmt.Sprintf("required field %q is already set", e.Field)
}

// ValidationError reports a value that does not conform to the field's
// declared value type. The field stays logically unset: marker state never
// changes on a rejected value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %s", e.Field, e.Reason)
}

// MissingRequiredFieldError reports a Finalize attempted before every
// required field was set. Fields lists every missing field in schema
// order, so one failure names them all.
type MissingRequiredFieldError struct {
	Fields []string
}

func (e *MissingRequiredFieldError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}
