package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"Warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var console bytes.Buffer
	log := New("warn", &console, nil)

	log.Info().Msg("hidden")
	log.Warn().Str("segment", "u-turn").Msg("shown")

	out := console.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "segment=")
}

func TestNewWritesFileWithoutColour(t *testing.T) {
	var console, file bytes.Buffer
	log := New("debug", &console, &file)

	log.Debug().Int("lap", 2).Msg("Lap complete")

	assert.Contains(t, console.String(), "Lap complete")
	assert.Contains(t, file.String(), "Lap complete")
	assert.Contains(t, file.String(), "lap=2")
	assert.NotContains(t, file.String(), "\x1b[")
}
