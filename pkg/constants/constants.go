package constants

import "time"

const (
	// DefaultServerURL is used when TRILIUM_URL is not set.
	DefaultServerURL = "http://localhost:8081"
	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "INFO"

	// EnvServerURL names the environment variable holding the server base URL.
	EnvServerURL = "TRILIUM_URL"
	// EnvToken names the environment variable holding the ETAPI bearer token.
	EnvToken = "TRILIUM_TOKEN"
	// EnvLogLevel names the environment variable holding the log level.
	EnvLogLevel = "LOG_LEVEL"

	// BasePath is the ETAPI route prefix on the Trilium server.
	BasePath = "/etapi"

	// DefaultHTTPTimeout bounds a single request round trip.
	DefaultHTTPTimeout = 30 * time.Second

	// RequestIDLength is the size of the correlation id attached to request logs.
	RequestIDLength = 16
	// NoteIDLength is the size of client-generated note identifiers,
	// matching the ids Trilium itself assigns.
	NoteIDLength = 12
)
