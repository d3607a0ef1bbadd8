package ml

import "fmt"

// MissingFieldError reports a required form field absent from the request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// InvalidValueError reports a field that was present but failed type or
// range validation.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Field, e.Value)
}

// UnknownCategoryError reports a categorical value outside the vocabulary
// the encoder was fitted on. No default code is ever substituted.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category: %q", e.Field, e.Value)
}

// IsUserError reports whether err is caused by bad caller input (as opposed
// to an internal fault that must not leak detail to the client).
func IsUserError(err error) bool {
	switch err.(type) {
	case *MissingFieldError, *InvalidValueError, *UnknownCategoryError:
		return true
	}
	return false
}
