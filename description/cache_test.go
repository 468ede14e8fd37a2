package description

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/status"
)

func testCatalog() *entity.Catalog {
	cat := entity.NewCatalog()
	cat.Add(entity.Entity{ID: 10, Name: "Bread", Kind: entity.KindIngestible, Effects: []entity.Effect{
		entity.Affect{Kind: entity.AffectHealth, Amount: 3},
		entity.Affect{Kind: entity.AffectFood, Amount: 250},
	}})
	cat.Add(entity.Entity{ID: 20, Name: "Dash", Kind: entity.KindSkill, Costs: entity.Costs{Cooldown: 8, Stamina: 15}})
	cat.Add(entity.Entity{ID: entity.WaterID(entity.WaterSalt), Name: "Salt Water", Kind: entity.KindWater})
	cat.SetWater(entity.WaterSalt, []entity.Effect{
		entity.Affect{Kind: entity.AffectDrink, Amount: 100},
		entity.Affect{Kind: entity.AffectHealth, Amount: -2},
	})
	return cat
}

func TestCacheBuildsOnceAndReturnsSameRows(t *testing.T) {
	reg := status.NewRegistry()
	c := NewCache(testCatalog(), testLocale(), reg)

	first := c.Rows(10)
	require.Len(t, first, 2)
	assert.Equal(t, 11, first[0].Order)
	assert.Equal(t, 21, first[1].Order)

	second := c.Rows(10)
	assert.Equal(t, first, second)
	require.NotEmpty(t, second)
	assert.Same(t, &first[0], &second[0], "cached slice is returned unchanged")

	assert.Equal(t, int64(1), reg.Ints.Get(status.RowsMisses).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.RowsHits).Load())
	assert.Equal(t, int64(1), reg.Ints.Get(status.RowsEntries).Load())
	assert.Equal(t, 1, c.Len())
}

func TestCacheSkillUsesCosts(t *testing.T) {
	c := NewCache(testCatalog(), testLocale(), nil)
	rows := c.Rows(20)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cooldown", rows[0].Label)
	assert.Equal(t, "8s", rows[0].Content)
	assert.Equal(t, "Stamina Cost", rows[1].Label)
	assert.Equal(t, "15", rows[1].Content)
}

func TestCacheWaterResolvesByKind(t *testing.T) {
	c := NewCache(testCatalog(), testLocale(), nil)
	rows := c.Rows(entity.WaterID(entity.WaterSalt))
	require.Len(t, rows, 2)
	assert.Equal(t, "Drink", rows[0].Label)
	assert.Equal(t, "+10%", rows[0].Content)
	assert.Equal(t, "-2", rows[1].Content)
}

func TestCacheUnknownEntityNotCached(t *testing.T) {
	reg := status.NewRegistry()
	c := NewCache(testCatalog(), testLocale(), reg)

	assert.Nil(t, c.Rows(999))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), reg.Ints.Get(status.RowsMisses).Load())
}

func TestCacheInvalidate(t *testing.T) {
	cat := testCatalog()
	c := NewCache(cat, testLocale(), nil)

	require.Len(t, c.Rows(10), 2)
	cat.Add(entity.Entity{ID: 10, Name: "Bread", Kind: entity.KindIngestible, Effects: []entity.Effect{
		entity.Affect{Kind: entity.AffectFood, Amount: 250},
	}})
	assert.Len(t, c.Rows(10), 2, "stale until invalidated")

	c.Invalidate(10)
	assert.Equal(t, 0, c.Len())
	assert.Len(t, c.Rows(10), 1)

	c.Invalidate(12345)
	assert.Equal(t, 1, c.Len())
}
