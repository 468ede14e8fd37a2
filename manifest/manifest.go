package manifest

import (
	"github.com/lixenwraith/modpack/mod"
	"github.com/lixenwraith/modpack/mods/descriptions"
	"github.com/lixenwraith/modpack/mods/playtime"
	"github.com/lixenwraith/modpack/mods/sandbox"
	"github.com/lixenwraith/modpack/registry"
)

// RegisterMods adds every known mod to r
// Registration order is discovery order
func RegisterMods(r *registry.Registry) error {
	entries := []registry.Entry{
		{
			Name: playtime.Name,
			Caps: registry.CapComponent | registry.CapUpdatable,
			Factory: func() (mod.Mod, error) {
				return playtime.New(), nil
			},
		},
		{
			Name: descriptions.Name,
			Caps: registry.CapComponent | registry.CapDelayedInit,
			Factory: func() (mod.Mod, error) {
				return descriptions.New(), nil
			},
		},
		{
			Name: sandbox.Name,
			Caps: registry.CapComponent | registry.CapUpdatable | registry.CapExcludeFromBuild,
			Factory: func() (mod.Mod, error) {
				return sandbox.New(), nil
			},
		},
	}
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefault populates the process-wide registry
func RegisterDefault() error {
	return RegisterMods(registry.Default())
}
