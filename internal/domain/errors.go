package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError reports the first contract violation in a request body.
// Field is the dotted path to the offending field.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
