package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
)

func testLocale() *locale.Table {
	return locale.NewTable("en", map[string]string{
		locale.KeyHealth:     "Health",
		locale.KeyStamina:    "Stamina",
		locale.KeyMana:       "Mana",
		locale.KeyFood:       "Food",
		locale.KeyDrink:      "Drink",
		locale.KeySleep:      "Sleep",
		locale.KeyCorruption: "Corruption",
		locale.KeyMax:        "Max",
		locale.KeyCooldown:   "Cooldown",
		locale.KeyCost:       "Cost",
		locale.KeyDurability: "Durability",
		locale.KeyAttackSpd:  "Attack Speed",
	})
}

func TestAffectRows(t *testing.T) {
	b := NewBuilder(testLocale())

	tests := []struct {
		name    string
		effect  entity.Affect
		label   string
		content string
		detail  Detail
		order   int
	}{
		{"food rounds tenths", entity.Affect{Kind: entity.AffectFood, Amount: 37}, "Food", "+4%", DetailNeeds, 11},
		{"drink negative", entity.Affect{Kind: entity.AffectDrink, Amount: -120}, "Drink", "-12%", DetailNeeds, 12},
		{"health", entity.Affect{Kind: entity.AffectHealth, Amount: 5}, "Health", "+5", DetailVitals, 21},
		{"health negative", entity.Affect{Kind: entity.AffectHealth, Amount: -5}, "Health", "-5", DetailVitals, 21},
		{"half rounds to even", entity.Affect{Kind: entity.AffectStamina, Amount: 2.5}, "Stamina", "+2", DetailVitals, 31},
		{"zero is empty", entity.Affect{Kind: entity.AffectMana, Amount: 0}, "Mana", "", DetailVitals, 41},
		{"max health", entity.Affect{Kind: entity.AffectMaxHealth, Amount: 10}, "Max. Health", "+10", DetailMaxVitals, 23},
		{"max mana", entity.Affect{Kind: entity.AffectMaxMana, Amount: -3}, "Max. Mana", "-3", DetailMaxVitals, 43},
		{"corruption", entity.Affect{Kind: entity.AffectCorruption, Amount: 50}, "Corruption", "+5%", DetailCorruption, 51},
		{"fatigue", entity.Affect{Kind: entity.AffectFatigue, Amount: 100}, "Sleep", "+10%", DetailNeeds, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := b.EffectRow(tt.effect)
			require.True(t, ok)
			assert.Equal(t, tt.label, row.Label)
			assert.Equal(t, tt.content, row.Content)
			assert.Equal(t, tt.detail, row.Detail)
			assert.Equal(t, tt.order, row.Order)
			assert.Equal(t, DefaultFontSize, row.Size)
		})
	}
}

func TestAddStatusChancePrefix(t *testing.T) {
	b := NewBuilder(testLocale())
	poison := &entity.Status{ID: "poison", Name: "Poisoned"}

	row, ok := b.EffectRow(entity.AddStatus{Status: poison, Chance: 42})
	require.True(t, ok)
	assert.Equal(t, "(42%) ", row.Prefix)
	assert.Equal(t, "(42%) + Poisoned", row.Content)
	assert.Equal(t, "+ Poisoned", row.Body())
	assert.Equal(t, DetailStatusEffects, row.Detail)
	assert.Equal(t, 61, row.Order)
	assert.Equal(t, ColorStatusEffect, row.Color)

	row, ok = b.EffectRow(entity.AddStatus{Status: poison, Chance: 100})
	require.True(t, ok)
	assert.Empty(t, row.Prefix)
	assert.Equal(t, "+ Poisoned", row.Content)
}

func TestAddStatusRegen(t *testing.T) {
	b := NewBuilder(testLocale())

	tests := []struct {
		name    string
		status  *entity.Status
		label   string
		content string
		order   int
	}{
		{
			name: "health over minutes",
			status: &entity.Status{Name: "Bandaged", Lifespan: 120,
				Effects: []entity.Effect{entity.Affect{Kind: entity.AffectHealth}},
				Data:    [][]string{{"0.3"}}},
			label: "Health Regen", content: "+36 / 2min", order: 22,
		},
		{
			name: "stamina under a minute",
			status: &entity.Status{Name: "Winded", Lifespan: 30,
				Effects: []entity.Effect{entity.Affect{Kind: entity.AffectStamina}},
				Data:    [][]string{{"-2"}}},
			label: "Stamina Regen", content: "-60 / 30sec", order: 32,
		},
		{
			name: "mana carries percent",
			status: &entity.Status{Name: "Focus", Lifespan: 60,
				Effects: []entity.Effect{entity.Affect{Kind: entity.AffectMana}},
				Data:    [][]string{{"1"}}},
			label: "Mana Regen", content: "+60% / 1min", order: 42,
		},
		{
			name: "corruption in tenths",
			status: &entity.Status{Name: "Taint", Lifespan: 100,
				Effects: []entity.Effect{entity.Affect{Kind: entity.AffectCorruption}},
				Data:    [][]string{{"1"}}},
			label: "Corruption Regen", content: "+10% / 1min", order: 52,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := b.EffectRow(entity.AddStatus{Status: tt.status, Chance: 100})
			require.True(t, ok)
			assert.Equal(t, tt.label, row.Label)
			assert.Equal(t, tt.content, row.Content)
			assert.Equal(t, tt.order, row.Order)
			assert.True(t, row.Detail.Has(DetailRegenRates))
		})
	}
}

func TestAddStatusFallsBackToName(t *testing.T) {
	b := NewBuilder(testLocale())

	tests := []struct {
		name   string
		status *entity.Status
	}{
		{"no data", &entity.Status{Name: "Wet", Effects: []entity.Effect{entity.Affect{Kind: entity.AffectHealth}}}},
		{"empty data row", &entity.Status{Name: "Wet", Effects: []entity.Effect{entity.Affect{Kind: entity.AffectHealth}}, Data: [][]string{{}}}},
		{"food has no regen", &entity.Status{Name: "Wet", Effects: []entity.Effect{entity.Affect{Kind: entity.AffectFood}}, Data: [][]string{{"1"}}}},
		{"unparsable", &entity.Status{Name: "Wet", Effects: []entity.Effect{entity.Affect{Kind: entity.AffectHealth}}, Data: [][]string{{"fast"}}}},
		{"nested remove", &entity.Status{Name: "Wet", Effects: []entity.Effect{entity.RemoveStatus{Scope: entity.RemoveNegative}}, Data: [][]string{{"1"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := b.EffectRow(entity.AddStatus{Status: tt.status, Chance: 100})
			require.True(t, ok)
			assert.Equal(t, "+ Wet", row.Content)
			assert.Equal(t, 61, row.Order)
		})
	}

	_, ok := b.EffectRow(entity.AddStatus{Chance: 100})
	assert.False(t, ok, "missing status produces no row")
}

func TestRemoveStatusRows(t *testing.T) {
	b := NewBuilder(testLocale())

	row, ok := b.EffectRow(entity.RemoveStatus{Scope: entity.RemoveNegative})
	require.True(t, ok)
	assert.Equal(t, "- "+NegativeStatusesText, row.Content)
	assert.Equal(t, DetailStatusCures, row.Detail)
	assert.Equal(t, 71, row.Order)
	assert.Equal(t, 17, row.Size, "long cure text shrinks")

	row, ok = b.EffectRow(entity.RemoveStatus{Scope: entity.RemoveSpecific, Target: "Poisoned"})
	require.True(t, ok)
	assert.Equal(t, "- Poisoned", row.Content)
	assert.Equal(t, DefaultFontSize, row.Size)
}

func TestUnknownEffectDropped(t *testing.T) {
	b := NewBuilder(testLocale())
	_, ok := b.EffectRow(entity.Unknown{Name: "teleport"})
	assert.False(t, ok)
}

func TestEffectRowsSortedAndStable(t *testing.T) {
	b := NewBuilder(testLocale())
	rows := b.EffectRows([]entity.Effect{
		entity.RemoveStatus{Scope: entity.RemoveSpecific, Target: "Bleeding"},
		entity.Affect{Kind: entity.AffectHealth, Amount: 5},
		entity.Unknown{Name: "x"},
		entity.Affect{Kind: entity.AffectFood, Amount: 100},
		entity.Affect{Kind: entity.AffectHealth, Amount: 7},
		entity.Affect{Kind: entity.AffectMaxHealth, Amount: 1},
	})

	require.Len(t, rows, 5)
	var orders []int
	for _, r := range rows {
		orders = append(orders, r.Order)
	}
	assert.Equal(t, []int{11, 21, 21, 23, 71}, orders)
	assert.Equal(t, "+5", rows[1].Content)
	assert.Equal(t, "+7", rows[2].Content)
}

func TestRowSizeShrinksWithLength(t *testing.T) {
	tests := []struct {
		n    int
		size int
	}{
		{19, 19},
		{20, 18},
		{24, 18},
		{25, 17},
		{30, 16},
		{64, 16},
	}
	for _, tt := range tests {
		body := make([]byte, tt.n)
		for i := range body {
			body[i] = 'x'
		}
		assert.Equal(t, tt.size, newRow("", string(body), DetailVitals, 1, ColorHealth).Size, "len %d", tt.n)
	}
}

func TestRowMarkup(t *testing.T) {
	row := newRow("Health", "+5", DetailVitals, 21, ColorHealth)
	assert.Equal(t, "<color=#C38586FF>+5</color>", row.Markup())

	chance := newRow("", "+ Poisoned", DetailStatusEffects, 61, ColorStatusEffect).withPrefix("(42%) ")
	assert.Equal(t, "<color=#C7FFB3FF><color=#C0C0C0FF>(42%)</color> + Poisoned</color>", chance.Markup())

	long := newRow("", "- "+NegativeStatusesText, DetailStatusCures, 71, ColorStatusCure)
	assert.Equal(t, "<color=#FFB3B4FF><size=17>- All Negative Status Effects</size></color>", long.Markup())
}

func TestCostRows(t *testing.T) {
	b := NewBuilder(testLocale())

	rows := b.CostRows(entity.Costs{Cooldown: 95.5, Health: 10, Mana: 2.5, DurabilityPercent: 5})
	require.Len(t, rows, 4)

	assert.Equal(t, "Cooldown", rows[0].Label)
	assert.Equal(t, "1m 35s", rows[0].Content)
	assert.Equal(t, DetailCooldown, rows[0].Detail)

	assert.Equal(t, "Health Cost", rows[1].Label)
	assert.Equal(t, "10", rows[1].Content)
	assert.Equal(t, "Mana Cost", rows[2].Label)
	assert.Equal(t, "2.5", rows[2].Content)
	assert.Equal(t, "Durability Cost", rows[3].Label)
	assert.Equal(t, "5%", rows[3].Content)
	for _, r := range rows[1:] {
		assert.Equal(t, DetailCosts, r.Detail)
	}

	rows = b.CostRows(entity.Costs{Cooldown: 12.9, Durability: 3})
	require.Len(t, rows, 2)
	assert.Equal(t, "12s", rows[0].Content)
	assert.Equal(t, "3", rows[1].Content)

	assert.Empty(t, b.CostRows(entity.Costs{}))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0sec", formatDuration(0))
	assert.Equal(t, "59sec", formatDuration(59.9))
	assert.Equal(t, "1min", formatDuration(60))
	assert.Equal(t, "1min", formatDuration(119))
	assert.Equal(t, "10min", formatDuration(600))
}
