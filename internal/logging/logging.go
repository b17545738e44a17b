// Package logging builds the zerolog loggers used by the binaries.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a timestamped logger writing console format to console and,
// when file is not nil, uncoloured console format to file.
func New(level string, console, file io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}
	if file != nil {
		w = zerolog.MultiLevelWriter(
			w,
			zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true},
		)
	}

	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}
