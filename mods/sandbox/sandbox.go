// Package sandbox is a scratch mod kept out of builds; it logs every hook it receives
package sandbox

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/mod"
)

// Name identifies the mod in the registry
const Name = "Sandbox"

// Mod logs its lifecycle
type Mod struct {
	log   zerolog.Logger
	ticks int
}

// New creates the mod
func New() *Mod {
	return &Mod{}
}

func (m *Mod) Name() string {
	return Name
}

func (m *Mod) Init(ctx *mod.Context) error {
	m.log = ctx.Logger(Name)
	m.log.Debug().Msg("Sandbox initialized")
	return nil
}

func (m *Mod) IsEnabled() bool {
	return true
}

func (m *Mod) OnTick(dt time.Duration) error {
	m.ticks++
	m.log.Trace().Int("tick", m.ticks).Dur("dt", dt).Msg("Sandbox tick")
	return nil
}
