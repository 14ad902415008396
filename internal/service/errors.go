package service

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by every service. Handlers map these to HTTP
// outcomes: ErrNotFound -> 404, ErrForbidden on edit/delete -> redirect to a
// safe view, ValidationError -> 400 with the field message.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a rejected input field. It is always recoverable:
// the caller re-displays the submission, nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
