package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trilium-community/trilium.go/pkg/constants"
)

// New builds a zerolog.Logger writing to w at the given level.
// The level string follows the LOG_LEVEL convention of the ETAPI tooling
// (DEBUG, INFO, WARNING, ERROR); unknown values fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a LOG_LEVEL string onto a zerolog level. Matching is
// case-insensitive and tolerates both WARN and WARNING.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "", constants.DefaultLogLevel:
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
