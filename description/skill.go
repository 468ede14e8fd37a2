package description

import (
	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
)

// CostRows maps a skill's costs to rows; zero costs produce nothing
func (b *Builder) CostRows(c entity.Costs) []Row {
	var rows []Row
	cost := " " + b.loc.Localize(locale.KeyCost)

	if c.Cooldown > 0 {
		rows = append(rows, newRow(b.loc.Localize(locale.KeyCooldown),
			formatSeconds(c.Cooldown, c.Cooldown >= 60),
			DetailCooldown, 11, ColorNeeds))
	}
	if c.Health > 0 {
		rows = append(rows, newRow(b.loc.Localize(locale.KeyHealth)+cost,
			formatNumber(c.Health), DetailCosts, 12, ColorHealth))
	}
	if c.Stamina > 0 {
		rows = append(rows, newRow(b.loc.Localize(locale.KeyStamina)+cost,
			formatNumber(c.Stamina), DetailCosts, 13, ColorStamina))
	}
	if c.Mana > 0 {
		rows = append(rows, newRow(b.loc.Localize(locale.KeyMana)+cost,
			formatNumber(c.Mana), DetailCosts, 14, ColorMana))
	}
	if c.Durability > 0 || c.DurabilityPercent > 0 {
		content := formatNumber(c.Durability)
		if c.DurabilityPercent > 0 {
			content = formatNumber(c.DurabilityPercent) + "%"
		}
		rows = append(rows, newRow(b.loc.Localize(locale.KeyDurability)+cost,
			content, DetailCosts, 15, ColorNeeds))
	}

	sortRows(rows)
	return rows
}
