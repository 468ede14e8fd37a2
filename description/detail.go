package description

import (
	"fmt"
	"strings"
)

// Detail is the row category bitset
type Detail uint32

const (
	DetailNone          Detail = 0
	DetailVitals        Detail = 1 << 1
	DetailMaxVitals     Detail = 1 << 2
	DetailNeeds         Detail = 1 << 3
	DetailCorruption    Detail = 1 << 4
	DetailRegenRates    Detail = 1 << 5
	DetailStatusEffects Detail = 1 << 6
	DetailStatusCures   Detail = 1 << 7
	DetailCooldown      Detail = 1 << 8
	DetailCosts         Detail = 1 << 9
	DetailAll           Detail = ^Detail(0)
)

var detailNames = []struct {
	flag Detail
	name string
}{
	{DetailVitals, "vitals"},
	{DetailMaxVitals, "max_vitals"},
	{DetailNeeds, "needs"},
	{DetailCorruption, "corruption"},
	{DetailRegenRates, "regen_rates"},
	{DetailStatusEffects, "status_effects"},
	{DetailStatusCures, "status_cures"},
	{DetailCooldown, "cooldown"},
	{DetailCosts, "costs"},
}

// Has reports whether every bit of flag is set
func (d Detail) Has(flag Detail) bool {
	return d&flag == flag
}

// Intersects reports whether d and other share at least one bit
func (d Detail) Intersects(other Detail) bool {
	return d&other != 0
}

func (d Detail) String() string {
	switch d {
	case DetailNone:
		return "none"
	case DetailAll:
		return "all"
	}
	var parts []string
	for _, n := range detailNames {
		if d&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("detail(%#x)", uint32(d))
	}
	return strings.Join(parts, "|")
}

// ParseDetail reads "all", "none" or names joined by '|' or ','
func ParseDetail(s string) (Detail, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return DetailNone, nil
	case "all":
		return DetailAll, nil
	}

	var d Detail
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		found := false
		for _, n := range detailNames {
			if n.name == part {
				d |= n.flag
				found = true
				break
			}
		}
		if !found {
			return DetailNone, fmt.Errorf("unknown detail %q", part)
		}
	}
	return d, nil
}
