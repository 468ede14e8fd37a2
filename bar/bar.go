// Package bar normalizes entity attributes into progress bar lengths
package bar

import (
	"math"

	"github.com/lixenwraith/modpack/entity"
)

// Maximum bar scale relative to the host's default bar
const (
	MaxScaleX = 2.75
	MaxScaleY = 2.50
)

// Kind selects the attribute a bar tracks and its curve
type Kind struct {
	Name     string
	Ceiling  float64
	Exponent float64
}

var (
	// Durability ceiling is the highest max durability in the base catalog
	Durability = Kind{Name: "durability", Ceiling: 777, Exponent: 0.75}
	// Freshness ceiling is the longest decay time in days
	Freshness = Kind{Name: "freshness", Ceiling: 104, Exponent: 2.0 / 3.0}
)

// Compute maps ratio through ratio^exponent onto [0,100], rounding half to even
// Ratio is clamped to [0,1]; NaN counts as 0
func Compute(ratio, exponent float64) int {
	switch {
	case math.IsNaN(ratio) || ratio <= 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}
	return int(math.RoundToEven(100 * math.Pow(ratio, exponent)))
}

// DurabilityRatio places maxDurability on the durability scale
func DurabilityRatio(maxDurability float64) float64 {
	return maxDurability / Durability.Ceiling
}

// FreshnessRatio converts a per-hour depletion rate into decay days on the freshness scale
func FreshnessRatio(depletionRate float64) float64 {
	if depletionRate <= 0 {
		return math.NaN()
	}
	days := 100 / (depletionRate * 24)
	return days / Freshness.Ceiling
}

// KindOf picks the bar an entity shows
func KindOf(e entity.Entity) Kind {
	if e.IsPerishable() {
		return Freshness
	}
	return Durability
}

// Size returns the bar length percentage for e: derived from its attribute when the
// matching toggle is on, the configured length otherwise
func Size(kind Kind, e entity.Entity, s Settings) int {
	if kind == Freshness {
		if s.FreshnessTiedToLifespan {
			if r := FreshnessRatio(e.DepletionRate); !math.IsNaN(r) {
				return Compute(r, kind.Exponent)
			}
		}
		return s.FreshnessSize
	}
	if s.DurabilityTiedToMax {
		return Compute(DurabilityRatio(e.MaxDurability), kind.Exponent)
	}
	return s.DurabilitySize
}

// Scale is the bar's local scale; the pivot stays at the top-left corner
type Scale struct {
	X, Y float64
}

// ScaleFor converts a length percentage and a thickness percentage into a scale
func ScaleFor(size, thickness int) Scale {
	offset := float64(size)/100*MaxScaleX - 1
	return Scale{
		X: 1 + offset,
		Y: float64(thickness) / 100 * MaxScaleY,
	}
}
