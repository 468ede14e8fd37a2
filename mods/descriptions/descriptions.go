// Package descriptions shows derived entity details and resizes durability and freshness bars
package descriptions

import (
	"errors"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/modpack/bar"
	"github.com/lixenwraith/modpack/config"
	"github.com/lixenwraith/modpack/description"
	"github.com/lixenwraith/modpack/display"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
	"github.com/lixenwraith/modpack/mod"
)

// Name identifies the mod in the registry and whitelists
const Name = "Descriptions"

var errMissingCollaborator = errors.New("descriptions needs settings, entity source and localizer")

// Mod is constructed once the host has loaded its data, so the cache can read entities
type Mod struct {
	settings *config.Settings
	src      entity.Source
	loc      locale.Localizer
	cache    *description.Cache
	log      zerolog.Logger
}

// New creates an uninitialized mod
func New() *Mod {
	return &Mod{}
}

// Name implements mod.Mod
func (m *Mod) Name() string {
	return Name
}

// Init implements mod.Initializer
func (m *Mod) Init(ctx *mod.Context) error {
	if ctx.Settings == nil || ctx.Source == nil || ctx.Locale == nil {
		return errMissingCollaborator
	}
	m.settings = ctx.Settings
	m.src = ctx.Source
	m.loc = ctx.Locale
	m.cache = description.NewCache(ctx.Source, ctx.Locale, ctx.Metrics)
	m.log = ctx.Logger(Name)

	m.log.Debug().
		Str("details", ctx.Settings.Descriptions.Details.String()).
		Bool("bars", ctx.Settings.Bars.Enabled).
		Msg("Descriptions ready")
	return nil
}

// Rows returns every cached row of id, unfiltered
func (m *Mod) Rows(id entity.ID) []description.Row {
	return m.cache.Rows(id)
}

// Invalidate drops the cached rows of id after its data changed
func (m *Mod) Invalidate(id entity.ID) {
	m.cache.Invalidate(id)
}

// ShowDetails fills sink with the rows of id selected by the details setting
// Returns false when the host should show its own details instead: details are off,
// the entity is unknown, or it is neither ingestible nor a skill
func (m *Mod) ShowDetails(id entity.ID, sink display.Sink) bool {
	want := m.settings.Descriptions.Details
	if want == description.DetailNone {
		return false
	}
	e, ok := m.resolve(id)
	if !ok || !e.IsIngestible() && !e.IsSkill() {
		return false
	}

	n := description.Show(m.cache.Rows(e.ID), want, sink)
	m.log.Trace().Int("id", int(e.ID)).Int("rows", n).Msg("Details shown")
	return true
}

// resolve swaps a filled water container for the water it holds
func (m *Mod) resolve(id entity.ID) (entity.Entity, bool) {
	e, ok := m.src.Entity(id)
	if !ok {
		return entity.Entity{}, false
	}
	if e.Kind == entity.KindWaterContainer && e.Contains != 0 {
		if water, ok := m.src.Entity(e.Contains); ok {
			return water, true
		}
	}
	return e, true
}

// BarSize returns the bar length percentage for id when bar overrides are on
func (m *Mod) BarSize(id entity.ID) (int, bool) {
	if !m.settings.Bars.Enabled {
		return 0, false
	}
	e, ok := m.src.Entity(id)
	if !ok {
		return 0, false
	}
	return bar.Size(bar.KindOf(e), e, m.settings.Bars), true
}

// BarScale returns the scale the host applies to the bar of id
func (m *Mod) BarScale(id entity.ID) (bar.Scale, bool) {
	size, ok := m.BarSize(id)
	if !ok {
		return bar.Scale{}, false
	}
	return bar.ScaleFor(size, m.settings.Bars.Thickness), true
}

func (m *Mod) equipment() config.EquipmentSettings {
	eq := m.settings.Descriptions.Equipment
	if !eq.Enabled {
		return config.EquipmentSettings{}
	}
	return eq
}

// AttackSpeedRow replaces the attack speed line with the relative form
// The second result is false when the host keeps its own line or none is shown
func (m *Mod) AttackSpeedRow(id entity.ID) (display.Slot, bool) {
	if !m.equipment().RelativeAttackSpeed {
		return display.Slot{}, false
	}
	e, ok := m.src.Entity(id)
	if !ok {
		return display.Slot{}, false
	}
	return description.AttackSpeedSlot(e.Weapon, m.loc)
}

// ImpactRow renders impact or impact resistance as a plain number in the damage lists
func (m *Mod) ImpactRow(id entity.ID, info description.Info) (display.Slot, bool) {
	if !m.equipment().NormalizeImpact {
		return display.Slot{}, false
	}
	e, ok := m.src.Entity(id)
	if !ok {
		return display.Slot{}, false
	}
	v, ok := description.ImpactValue(e, info)
	if !ok {
		return display.Slot{}, false
	}
	return display.Slot{
		Content: strconv.Itoa(v),
		Color:   tcell.ColorWhite,
		Size:    description.DefaultFontSize,
	}, true
}

// HideDurability reports whether the numeric durability line is suppressed
func (m *Mod) HideDurability() bool {
	return m.equipment().HideNumericalDurability
}

// ReorderBarrier moves the barrier line of id right below protection
func (m *Mod) ReorderBarrier(id entity.ID, infos []description.Info) bool {
	if !m.equipment().MoveBarrierBelowProtection {
		return false
	}
	e, ok := m.src.Entity(id)
	if !ok {
		return false
	}
	return description.MoveBarrierBelowProtection(infos, e)
}
