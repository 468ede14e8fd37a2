package config

import (
	"fmt"

	"github.com/lixenwraith/modpack/description"
)

// PresetPreferredUI turns every details and bar override on
const PresetPreferredUI = "preferred_ui"

// ApplyPreset overwrites the preset's fields; others keep their values
func (s *Settings) ApplyPreset(name string) error {
	switch name {
	case PresetPreferredUI:
		s.Descriptions.Details = description.DetailAll
		s.Descriptions.DetailsText = description.DetailAll.String()
		s.Descriptions.Equipment = EquipmentSettings{
			Enabled:                    true,
			RelativeAttackSpeed:        true,
			NormalizeImpact:            true,
			MoveBarrierBelowProtection: true,
			HideNumericalDurability:    true,
		}
		s.Bars.Enabled = true
		s.Bars.DurabilityTiedToMax = true
		s.Bars.FreshnessTiedToLifespan = true
		s.Bars.Thickness = 60
	default:
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	s.Preset = name
	return nil
}
