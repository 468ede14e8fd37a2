// Package locale provides the localization collaborator used to label rows
package locale

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Keys read by the description overlay
const (
	KeyHealth     = "CharacterStat_Health"
	KeyStamina    = "CharacterStat_Stamina"
	KeyMana       = "CharacterStat_Mana"
	KeyFood       = "CharacterStat_Food"
	KeyDrink      = "CharacterStat_Drink"
	KeySleep      = "CharacterStat_Sleep"
	KeyCorruption = "CharacterStat_Corruption"
	KeyMax        = "General_Max"
	KeyCooldown   = "ItemStat_Cooldown"
	KeyCost       = "BuildingMenu_Supplier_Cost"
	KeyDurability = "ItemStat_Durability"
	KeyAttackSpd  = "ItemStat_AttackSpeed"
)

var ErrDecode = errors.New("locale decode")

// Localizer resolves a localization key to display text
type Localizer interface {
	Localize(key string) string
}

// Table is a map-backed Localizer; a missing key resolves to the key itself
type Table struct {
	Language string
	entries  map[string]string
}

// NewTable creates a table from entries
func NewTable(language string, entries map[string]string) *Table {
	t := &Table{Language: language, entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Localize implements Localizer
func (t *Table) Localize(key string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	return key
}

// Has reports whether key has an entry
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Decode parses a TOML document of the form:
//
//	language = "en"
//	[strings]
//	CharacterStat_Health = "Health"
func Decode(doc string) (*Table, error) {
	var raw struct {
		Language string            `toml:"language"`
		Strings  map[string]string `toml:"strings"`
	}
	if _, err := toml.Decode(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raw.Language == "" {
		return nil, fmt.Errorf("%w: missing language", ErrDecode)
	}
	return NewTable(raw.Language, raw.Strings), nil
}

// Func adapts a function to Localizer
type Func func(key string) string

// Localize implements Localizer
func (f Func) Localize(key string) string {
	return f(key)
}
