// Package logging builds the zerolog loggers handed to the runtime and its mods
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "MODPACK_LOG_LEVEL"
	EnvLogTimestamp = "MODPACK_LOG_TIMESTAMP"
	EnvLogNoColor   = "MODPACK_LOG_NOCOLOR"
)

// Profile selects defaults for a logger
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Options describe a logger before env overrides are applied
type Options struct {
	App       string
	Out       io.Writer
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

// Defaults returns the options for a profile
func Defaults(profile Profile) Options {
	switch profile {
	case ProfileTest:
		return Options{App: "modpack", Out: os.Stderr, Level: zerolog.DebugLevel, NoColor: true}
	default:
		return Options{App: "modpack", Out: os.Stderr, Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// New builds a console logger, applying MODPACK_LOG_* overrides on top of opts
func New(opts Options) zerolog.Logger {
	applyEnvOverrides(&opts)
	if opts.Out == nil {
		opts.Out = os.Stderr
	}

	output := zerolog.ConsoleWriter{
		Out:        opts.Out,
		NoColor:    opts.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !opts.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	ctx := zerolog.New(output).Level(opts.Level).With()
	if opts.Timestamp {
		ctx = ctx.Timestamp()
	}
	if opts.App != "" {
		ctx = ctx.Str("app", opts.App)
	}
	return ctx.Logger()
}

// Nop returns a disabled logger for callers that do not care about output
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func applyEnvOverrides(opts *Options) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		opts.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel accepts the level names used in settings and env vars
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
