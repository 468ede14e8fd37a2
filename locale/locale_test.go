package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tbl, err := Decode(`
language = "en"
[strings]
CharacterStat_Health = "Health"
General_Max = "Max"
`)
	require.NoError(t, err)
	assert.Equal(t, "en", tbl.Language)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "Health", tbl.Localize(KeyHealth))
	assert.True(t, tbl.Has(KeyMax))
}

func TestMissingKeyPassesThrough(t *testing.T) {
	tbl := NewTable("en", nil)
	assert.Equal(t, KeyMana, tbl.Localize(KeyMana))
	assert.False(t, tbl.Has(KeyMana))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(`[strings]`)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode(`language = `)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFunc(t *testing.T) {
	var l Localizer = Func(func(key string) string { return "<" + key + ">" })
	assert.Equal(t, "<x>", l.Localize("x"))
}
