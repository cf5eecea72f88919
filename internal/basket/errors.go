package basket

import (
	"errors"
	"fmt"
	"strings"
)

const (
	reasonNameRequired = "Basket name required"
	reasonNameExists   = "Basket already exists"
	reasonNoSelection  = "Select a basket first"
)

// ValidationError is raised before any request is made.
type ValidationError struct {
	Action string
	Name   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// PartialRenameError reports a rename whose copy succeeded but whose delete of
// the old basket failed, leaving both baskets on the server.
type PartialRenameError struct {
	From string
	To   string
	Err  error
}

func (e *PartialRenameError) Error() string {
	return fmt.Sprintf("renamed %s to %s but could not delete %s (both baskets now exist): %v", e.From, e.To, e.From, e.Err)
}

func (e *PartialRenameError) Unwrap() error {
	return e.Err
}

// ValidateName checks a candidate basket name against the known names.
// Comparison is case-sensitive.
func ValidateName(action string, names []string, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Action: action, Name: name, Reason: reasonNameRequired}
	}
	for _, existing := range names {
		if existing == name {
			return &ValidationError{Action: action, Name: name, Reason: reasonNameExists}
		}
	}
	return nil
}
