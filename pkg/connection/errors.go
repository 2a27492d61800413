package connection

import "fmt"

// APIError reports a failed round trip: either a non-2xx response or a
// transport-level failure (DNS, refused connection, timeout, cancelled
// context). Transport failures carry no status code.
type APIError struct {
	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int
	// Code is the machine-readable ETAPI error code, when the server
	// provided one.
	Code    string
	Message string
	// Err preserves the underlying transport error, when any.
	Err error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("api: %s", e.Message)
	case e.Code != "":
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
}

func (e *APIError) Unwrap() error { return e.Err }
