package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
)

func TestDefaultCatalogDecodes(t *testing.T) {
	c, err := entity.DecodeCatalog(DefaultCatalog)
	require.NoError(t, err)
	assert.Equal(t, 21, c.Len())

	for kind := entity.WaterClean; kind <= entity.WaterHealing; kind++ {
		assert.NotEmpty(t, c.WaterEffects(kind), "water %s", kind)
	}

	skin, ok := c.Entity(4200040)
	require.True(t, ok)
	_, ok = c.Entity(skin.Contains)
	assert.True(t, ok, "waterskin content is in the catalog")
}

func TestDefaultLocaleCoversKeys(t *testing.T) {
	tbl, err := locale.Decode(DefaultLocale)
	require.NoError(t, err)

	for _, key := range []string{
		locale.KeyHealth, locale.KeyStamina, locale.KeyMana, locale.KeyFood, locale.KeyDrink,
		locale.KeySleep, locale.KeyCorruption, locale.KeyMax, locale.KeyCooldown, locale.KeyCost,
		locale.KeyDurability, locale.KeyAttackSpd,
	} {
		assert.True(t, tbl.Has(key), key)
	}
}
