package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
	}
}

func TestNewWritesAppField(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogTimestamp, "")
	t.Setenv(EnvLogNoColor, "")

	var buf bytes.Buffer
	opts := Defaults(ProfileTest)
	opts.Out = &buf
	log := New(opts)

	log.Info().Str("mod", "descriptions").Msg("instantiated")
	out := buf.String()
	require.Contains(t, out, "instantiated")
	assert.Contains(t, out, "app=modpack")
	assert.Contains(t, out, "mod=descriptions")
}

func TestEnvLevelOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	var buf bytes.Buffer
	opts := Defaults(ProfileTest)
	opts.Out = &buf
	log := New(opts)

	log.Info().Msg("hidden")
	log.Error().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
