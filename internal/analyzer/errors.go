package analyzer

import "fmt"

// MissingFieldError indicates a required field is absent or has the wrong shape
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no '%s' field found in dfx.json", e.Field)
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}
