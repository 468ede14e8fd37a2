package bar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/entity"
)

func TestComputeEndpoints(t *testing.T) {
	for _, e := range []float64{0.5, 2.0 / 3.0, 0.75, 1, 2} {
		assert.Equal(t, 0, Compute(0, e))
		assert.Equal(t, 100, Compute(1, e))
	}
}

func TestComputeMonotonic(t *testing.T) {
	for _, kind := range []Kind{Durability, Freshness} {
		prev := -1
		for i := 0; i <= 1000; i++ {
			got := Compute(float64(i)/1000, kind.Exponent)
			require.GreaterOrEqual(t, got, prev, "%s at %d", kind.Name, i)
			prev = got
		}
	}
}

func TestComputeClamps(t *testing.T) {
	assert.Equal(t, 0, Compute(-0.5, 0.75))
	assert.Equal(t, 100, Compute(3, 0.75))
	assert.Equal(t, 0, Compute(math.NaN(), 0.75))
}

func TestComputeCurve(t *testing.T) {
	// 0.5^0.75 = 0.5946
	assert.Equal(t, 59, Compute(0.5, Durability.Exponent))
	// 0.125^(2/3) = 0.25
	assert.Equal(t, 25, Compute(0.125, Freshness.Exponent))
}

func TestRatios(t *testing.T) {
	assert.InDelta(t, 1.0, DurabilityRatio(777), 1e-9)
	assert.InDelta(t, 0.5, DurabilityRatio(388.5), 1e-9)

	// 100 / (rate*24) days: rate 100/(24*104) lasts the full ceiling
	assert.InDelta(t, 1.0, FreshnessRatio(100.0/(24*104)), 1e-9)
	assert.InDelta(t, 0.5, FreshnessRatio(100.0/(24*52)), 1e-9)
	assert.True(t, math.IsNaN(FreshnessRatio(0)))
}

func TestSize(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 36, s.DurabilitySize)
	assert.Equal(t, 40, s.Thickness)

	sword := entity.Entity{Kind: entity.KindEquipment, MaxDurability: 777}
	ration := entity.Entity{Kind: entity.KindIngestible, DepletionRate: 100.0 / (24 * 104)}

	assert.Equal(t, Durability, KindOf(sword))
	assert.Equal(t, Freshness, KindOf(ration))

	assert.Equal(t, 36, Size(Durability, sword, s))
	assert.Equal(t, 36, Size(Freshness, ration, s))

	s.DurabilityTiedToMax = true
	s.FreshnessTiedToLifespan = true
	assert.Equal(t, 100, Size(Durability, sword, s))
	assert.Equal(t, 100, Size(Freshness, ration, s))

	stale := entity.Entity{Kind: entity.KindIngestible}
	assert.Equal(t, s.FreshnessSize, Size(Freshness, stale, s), "no depletion rate keeps the configured length")
}

func TestScaleFor(t *testing.T) {
	sc := ScaleFor(100, 100)
	assert.InDelta(t, MaxScaleX, sc.X, 1e-9)
	assert.InDelta(t, MaxScaleY, sc.Y, 1e-9)

	sc = ScaleFor(0, 60)
	assert.InDelta(t, 0, sc.X, 1e-9)
	assert.InDelta(t, 1.5, sc.Y, 1e-9)
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	s := DefaultSettings()
	s.Thickness = 101
	assert.ErrorContains(t, s.Validate(), "bars.thickness")
}
