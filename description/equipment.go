package description

import (
	"math"
	"strconv"

	"github.com/lixenwraith/modpack/display"
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
)

// Info identifies one line of the host's default equipment details
type Info uint8

const (
	InfoDamage Info = iota
	InfoDamageResistance
	InfoImpact
	InfoImpactResistance
	InfoProtection
	InfoBarrierProtection
	InfoAttackSpeed
	InfoDurability
)

// AttackSpeedSlot renders attack speed relative to the default of 1, e.g. "+10%"
// Default-speed weapons, shields and bows get no line
func AttackSpeedSlot(w *entity.Weapon, loc locale.Localizer) (display.Slot, bool) {
	if w == nil || w.Type == entity.WeaponShield || w.Type == entity.WeaponBow {
		return display.Slot{}, false
	}
	offset := w.AttackSpeed - 1
	if offset == 0 {
		return display.Slot{}, false
	}

	pct := int(math.Round(offset * 100))
	text := strconv.Itoa(pct) + "%"
	color := ColorSlower
	if offset > 0 {
		text = "+" + text
		color = ColorFaster
	}
	return display.Slot{
		Label:   loc.Localize(locale.KeyAttackSpd),
		Content: text,
		Color:   color,
		Size:    DefaultFontSize,
	}, true
}

// ImpactValue returns the rounded impact damage or impact resistance for the normalized
// impact line; false when the value is not positive
func ImpactValue(e entity.Entity, info Info) (int, bool) {
	var v float64
	switch info {
	case InfoImpact:
		if e.Weapon == nil {
			return 0, false
		}
		v = e.Weapon.Impact
	case InfoImpactResistance:
		v = e.ImpactResistance
	default:
		return 0, false
	}
	if v <= 0 {
		return 0, false
	}
	return roundInt(v), true
}

// MoveBarrierBelowProtection swaps the barrier line with the resistances line when barrier
// is listed after resistances, so barrier sits right under protection. Reports whether it swapped
func MoveBarrierBelowProtection(infos []Info, e entity.Entity) bool {
	if e.Kind != entity.KindEquipment || e.BarrierProtection <= 0 {
		return false
	}
	res, barrier := -1, -1
	for i, info := range infos {
		switch info {
		case InfoDamageResistance:
			if res < 0 {
				res = i
			}
		case InfoBarrierProtection:
			if barrier < 0 {
				barrier = i
			}
		}
	}
	if res < 0 || barrier < 0 || barrier < res {
		return false
	}
	infos[res], infos[barrier] = infos[barrier], infos[res]
	return true
}
