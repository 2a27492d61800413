package constants

import "errors"

// Errors
var (
	ErrClientClosed = errors.New("client is closed")
	ErrTokenMissing = errors.New("no API token provided: set TRILIUM_TOKEN in the environment or .env file")
	ErrNoBaseURL    = errors.New("base url not set")
)
