package description

import (
	"sort"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
)

// NegativeStatusesText is shown for cures that remove every negative status
const NegativeStatusesText = "All Negative Status Effects"

// affectStyle is the fixed presentation of one simple delta kind
type affectStyle struct {
	key     string
	max     bool
	divisor float64
	suffix  string
	detail  Detail
	order   int
	color   tcell.Color
}

var affectStyles = map[entity.AffectKind]affectStyle{
	entity.AffectHealth:     {locale.KeyHealth, false, divisorVital, "", DetailVitals, 21, ColorHealth},
	entity.AffectStamina:    {locale.KeyStamina, false, divisorVital, "", DetailVitals, 31, ColorStamina},
	entity.AffectMana:       {locale.KeyMana, false, divisorVital, "", DetailVitals, 41, ColorMana},
	entity.AffectMaxHealth:  {locale.KeyHealth, true, divisorVital, "", DetailMaxVitals, 23, ColorHealth},
	entity.AffectMaxStamina: {locale.KeyStamina, true, divisorVital, "", DetailMaxVitals, 33, ColorStamina},
	entity.AffectMaxMana:    {locale.KeyMana, true, divisorVital, "", DetailMaxVitals, 43, ColorMana},
	entity.AffectFood:       {locale.KeyFood, false, divisorPercent, "%", DetailNeeds, 11, ColorNeeds},
	entity.AffectDrink:      {locale.KeyDrink, false, divisorPercent, "%", DetailNeeds, 12, ColorNeeds},
	entity.AffectFatigue:    {locale.KeySleep, false, divisorPercent, "%", DetailNeeds, 13, ColorNeeds},
	entity.AffectCorruption: {locale.KeyCorruption, false, divisorPercent, "%", DetailCorruption, 51, ColorCorruption},
}

// regenStyle is the presentation of a status whose first effect ticks a vital or corruption
type regenStyle struct {
	key     string
	divisor float64
	suffix  string
	detail  Detail
	order   int
	color   tcell.Color
}

var regenStyles = map[entity.AffectKind]regenStyle{
	entity.AffectHealth:     {locale.KeyHealth, divisorVital, "", DetailVitals | DetailRegenRates, 22, ColorHealth},
	entity.AffectStamina:    {locale.KeyStamina, divisorVital, "", DetailVitals | DetailRegenRates, 32, ColorStamina},
	entity.AffectMana:       {locale.KeyMana, divisorVital, "%", DetailVitals | DetailRegenRates, 42, ColorMana},
	entity.AffectCorruption: {locale.KeyCorruption, divisorPercent, "%", DetailCorruption | DetailRegenRates, 52, ColorCorruption},
}

// Builder translates raw effects and costs into rows
type Builder struct {
	loc locale.Localizer
}

// NewBuilder creates a builder labelling rows through loc
func NewBuilder(loc locale.Localizer) *Builder {
	return &Builder{loc: loc}
}

// EffectRow maps one effect to at most one row
func (b *Builder) EffectRow(e entity.Effect) (Row, bool) {
	switch eff := e.(type) {
	case entity.Affect:
		return b.affectRow(eff)
	case entity.RemoveStatus:
		return newRow("", "- "+cureTarget(eff), DetailStatusCures, 71, ColorStatusCure), true
	case entity.AddStatus:
		return b.statusRow(eff)
	case entity.Unknown:
		return Row{}, false
	default:
		return Row{}, false
	}
}

// EffectRows maps effects in order, dropping the ones without a row, and sorts the result
func (b *Builder) EffectRows(effects []entity.Effect) []Row {
	rows := make([]Row, 0, len(effects))
	for _, e := range effects {
		if row, ok := b.EffectRow(e); ok {
			rows = append(rows, row)
		}
	}
	sortRows(rows)
	return rows
}

func (b *Builder) affectRow(a entity.Affect) (Row, bool) {
	style, ok := affectStyles[a.Kind]
	if !ok {
		return Row{}, false
	}
	label := b.loc.Localize(style.key)
	if style.max {
		label = b.loc.Localize(locale.KeyMax) + ". " + label
	}
	return newRow(label, formatEffectValue(a.Amount, style.divisor, style.suffix), style.detail, style.order, style.color), true
}

func (b *Builder) statusRow(a entity.AddStatus) (Row, bool) {
	if a.Status == nil {
		return Row{}, false
	}
	status := a.Status
	nameRow := newRow("", "+ "+status.Name, DetailStatusEffects, 61, ColorStatusEffect)
	if a.Chance < 100 {
		nameRow = nameRow.withPrefix("(" + strconv.Itoa(a.Chance) + "%) ")
	}

	if !status.HasEffectsAndData() {
		return nameRow, true
	}
	data := status.Data[0]
	if len(data) == 0 {
		return nameRow, true
	}
	inner, ok := status.Effects[0].(entity.Affect)
	if !ok {
		return nameRow, true
	}
	style, ok := regenStyles[inner.Kind]
	if !ok {
		return nameRow, true
	}
	perTick, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return nameRow, true
	}

	label := b.loc.Localize(style.key) + " Regen"
	content := formatStatusValue(perTick, status.Lifespan, style.divisor, style.suffix)
	return newRow(label, content, style.detail, style.order, style.color), true
}

func cureTarget(r entity.RemoveStatus) string {
	switch r.Scope {
	case entity.RemoveNegative:
		return NegativeStatusesText
	default:
		return r.Target
	}
}

// sortRows orders by Order ascending; equal orders keep derivation order
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Order < rows[j].Order
	})
}
