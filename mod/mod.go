// Package mod defines the contract between feature components and the scheduler
package mod

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/config"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
	"github.com/lixenwraith/modpack/status"
)

// Mod is a feature component instantiated by the scheduler
//
// Lifecycle:
//  1. Construction (via registry factory), in discovery order within its bucket
//  2. Init(ctx) when the mod implements Initializer
//  3. OnTick(dt) every tick while IsEnabled, when the mod implements Updatable
//
// There is no teardown; instances live for the rest of the process
type Mod interface {
	// Name returns the identifier used for whitelisting and lookups
	Name() string
}

// Initializer is implemented by mods that need the shared context after construction
type Initializer interface {
	// Init is called exactly once, right after construction
	// A returned error aborts startup
	Init(ctx *Context) error
}

// Updatable is implemented by mods with a per-tick hook
type Updatable interface {
	// IsEnabled is polled every tick; disabled mods are skipped for that tick
	IsEnabled() bool

	// OnTick receives the time since the previous tick
	OnTick(dt time.Duration) error
}

// Context carries the collaborators shared by every mod
type Context struct {
	Log      zerolog.Logger
	Settings *config.Settings
	Source   entity.Source
	Locale   locale.Localizer
	Metrics  *status.Registry
}

// Logger returns the context logger tagged with the mod name
func (c *Context) Logger(name string) zerolog.Logger {
	return c.Log.With().Str("mod", name).Logger()
}
