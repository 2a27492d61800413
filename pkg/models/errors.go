package models

import "fmt"

// ValidationError reports a request payload or server payload that fails
// local validation. It is raised before any network call for requests, and
// during deserialization for responses with missing or malformed required
// fields.
type ValidationError struct {
	// Field is the wire key or struct field that failed, when known.
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
	}
	return "validation: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }
