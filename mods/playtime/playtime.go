// Package playtime accumulates session time while a session is active
package playtime

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/config"
	"github.com/lixenwraith/modpack/mod"
	"github.com/lixenwraith/modpack/status"
)

// Name identifies the mod in the registry and whitelists
const Name = "Playtime"

// Mod is an immediate, updatable mod toggled through settings
type Mod struct {
	settings *config.Settings
	log      zerolog.Logger

	elapsed  time.Duration
	millis   *atomic.Int64
	sessions *atomic.Int64
	logEvery time.Duration
	nextLog  time.Duration
}

// New creates an uninitialized mod
func New() *Mod {
	return &Mod{logEvery: time.Minute}
}

// Name implements mod.Mod
func (m *Mod) Name() string {
	return Name
}

// Init implements mod.Initializer
func (m *Mod) Init(ctx *mod.Context) error {
	m.settings = ctx.Settings
	if m.settings == nil {
		d := config.Default()
		m.settings = &d
	}
	reg := ctx.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}
	m.millis = reg.Ints.Get(status.PlaytimeMillis)
	m.sessions = reg.Ints.Get(status.PlaytimeSessions)
	m.log = ctx.Logger(Name)
	m.nextLog = m.logEvery
	return nil
}

// IsEnabled implements mod.Updatable
func (m *Mod) IsEnabled() bool {
	return m.settings.Enabled(Name)
}

// OnTick implements mod.Updatable
func (m *Mod) OnTick(dt time.Duration) error {
	if dt <= 0 {
		return nil
	}
	if m.elapsed == 0 {
		m.sessions.Add(1)
	}
	m.elapsed += dt
	m.millis.Store(m.elapsed.Milliseconds())

	if m.elapsed >= m.nextLog {
		m.log.Info().Dur("elapsed", m.elapsed).Msg("Playtime")
		m.nextLog += m.logEvery
	}
	return nil
}

// Elapsed returns the accumulated enabled time
func (m *Mod) Elapsed() time.Duration {
	return m.elapsed
}
