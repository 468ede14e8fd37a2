package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrDecode wraps every catalog decoding failure
var ErrDecode = errors.New("catalog decode")

type rawEffect struct {
	Kind   string  `toml:"kind"`
	Amount float64 `toml:"amount"`
	Status string  `toml:"status"`
	Chance *int    `toml:"chance"`
	Scope  string  `toml:"scope"`
	Target string  `toml:"target"`
}

type rawStatus struct {
	Name     string      `toml:"name"`
	Lifespan float64     `toml:"lifespan"`
	Effects  []rawEffect `toml:"effects"`
	Data     [][]string  `toml:"data"`
}

type rawWeapon struct {
	Type        string  `toml:"type"`
	AttackSpeed float64 `toml:"attack_speed"`
	Impact      float64 `toml:"impact"`
}

type rawEntity struct {
	ID                int         `toml:"id"`
	Name              string      `toml:"name"`
	Kind              string      `toml:"kind"`
	Effects           []rawEffect `toml:"effects"`
	Costs             Costs       `toml:"costs"`
	Contains          int         `toml:"contains"`
	MaxDurability     float64     `toml:"max_durability"`
	DepletionRate     float64     `toml:"depletion_rate"`
	ImpactResistance  float64     `toml:"impact_resistance"`
	BarrierProtection float64     `toml:"barrier_protection"`
	Weapon            *rawWeapon  `toml:"weapon"`
}

type rawWater struct {
	Effects []rawEffect `toml:"effects"`
}

type rawCatalog struct {
	Statuses map[string]rawStatus `toml:"statuses"`
	Water    map[string]rawWater  `toml:"water"`
	Entities []rawEntity          `toml:"entities"`
}

var affectKinds = func() map[string]AffectKind {
	m := make(map[string]AffectKind, len(affectNames))
	for i, n := range affectNames {
		m[n] = AffectKind(i)
	}
	return m
}()

var removeScopes = map[string]RemoveScope{
	"specific": RemoveSpecific,
	"type":     RemoveType,
	"family":   RemoveFamily,
	"negative": RemoveNegative,
}

var weaponTypes = map[string]WeaponType{
	"":       WeaponMelee,
	"melee":  WeaponMelee,
	"shield": WeaponShield,
	"bow":    WeaponBow,
}

// DecodeCatalog parses a TOML catalog document
// Statuses are decoded first so entity effects can reference them by key
func DecodeCatalog(doc string) (*Catalog, error) {
	var raw rawCatalog
	md, err := toml.Decode(doc, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrDecode, strings.Join(keys, ", "))
	}

	c := NewCatalog()
	for key, rs := range raw.Statuses {
		effects, err := decodeEffects(rs.Effects, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: status %s: %w", ErrDecode, key, err)
		}
		c.AddStatus(&Status{
			ID:       key,
			Name:     rs.Name,
			Lifespan: rs.Lifespan,
			Effects:  effects,
			Data:     rs.Data,
		})
	}

	for name, rw := range raw.Water {
		kind, ok := parseWaterKind(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown water kind %q", ErrDecode, name)
		}
		effects, err := decodeEffects(rw.Effects, c.statuses)
		if err != nil {
			return nil, fmt.Errorf("%w: water %s: %w", ErrDecode, name, err)
		}
		c.SetWater(kind, effects)
	}

	for _, re := range raw.Entities {
		e, err := decodeEntity(re, c.statuses)
		if err != nil {
			return nil, fmt.Errorf("%w: entity %d: %w", ErrDecode, re.ID, err)
		}
		if _, dup := c.entities[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate entity id %d", ErrDecode, e.ID)
		}
		c.Add(e)
	}
	return c, nil
}

func decodeEntity(re rawEntity, statuses map[string]*Status) (Entity, error) {
	kind, ok := kindNames[re.Kind]
	if !ok {
		return Entity{}, fmt.Errorf("unknown kind %q", re.Kind)
	}
	effects, err := decodeEffects(re.Effects, statuses)
	if err != nil {
		return Entity{}, err
	}
	e := Entity{
		ID:                ID(re.ID),
		Name:              re.Name,
		Kind:              kind,
		Effects:           effects,
		Costs:             re.Costs,
		Contains:          ID(re.Contains),
		MaxDurability:     re.MaxDurability,
		DepletionRate:     re.DepletionRate,
		ImpactResistance:  re.ImpactResistance,
		BarrierProtection: re.BarrierProtection,
	}
	if re.Weapon != nil {
		wt, ok := weaponTypes[re.Weapon.Type]
		if !ok {
			return Entity{}, fmt.Errorf("unknown weapon type %q", re.Weapon.Type)
		}
		e.Weapon = &Weapon{Type: wt, AttackSpeed: re.Weapon.AttackSpeed, Impact: re.Weapon.Impact}
	}
	if kind == KindWater {
		if _, ok := WaterKindOf(e.ID); !ok {
			return Entity{}, fmt.Errorf("water entity id outside %d..%d", WaterItemBaseID, WaterID(waterKindCount-1))
		}
	}
	return e, nil
}

// decodeEffects resolves raw effects; statuses is nil while decoding status definitions,
// which keeps status-inside-status references out of the model
func decodeEffects(raws []rawEffect, statuses map[string]*Status) ([]Effect, error) {
	effects := make([]Effect, 0, len(raws))
	for _, r := range raws {
		if k, ok := affectKinds[r.Kind]; ok {
			effects = append(effects, Affect{Kind: k, Amount: r.Amount})
			continue
		}
		switch r.Kind {
		case "add_status":
			if statuses == nil {
				return nil, fmt.Errorf("add_status not allowed inside a status")
			}
			s, ok := statuses[r.Status]
			if !ok {
				return nil, fmt.Errorf("unknown status %q", r.Status)
			}
			chance := 100
			if r.Chance != nil {
				chance = *r.Chance
			}
			effects = append(effects, AddStatus{Status: s, Chance: chance})
		case "remove_status":
			scope, ok := removeScopes[r.Scope]
			if !ok {
				return nil, fmt.Errorf("unknown remove scope %q", r.Scope)
			}
			effects = append(effects, RemoveStatus{Scope: scope, Target: r.Target})
		case "":
			return nil, fmt.Errorf("effect without kind")
		default:
			effects = append(effects, Unknown{Name: r.Kind})
		}
	}
	return effects, nil
}
