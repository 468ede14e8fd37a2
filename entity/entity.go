package entity

// ID identifies an entity (item or skill) for the lifetime of the process
type ID int

// Kind classifies an entity for description purposes
type Kind uint8

const (
	KindOther Kind = iota
	KindIngestible
	KindSkill
	KindWater
	KindWaterContainer
	KindEquipment
)

var kindNames = map[string]Kind{
	"other":           KindOther,
	"ingestible":      KindIngestible,
	"skill":           KindSkill,
	"water":           KindWater,
	"water_container": KindWaterContainer,
	"equipment":       KindEquipment,
}

// WeaponType matters only for attack speed display
type WeaponType uint8

const (
	WeaponMelee WeaponType = iota
	WeaponShield
	WeaponBow
)

// Weapon holds the weapon stats the equipment overlay reads
type Weapon struct {
	Type        WeaponType
	AttackSpeed float64
	Impact      float64
}

// Costs are the activation costs of a skill
type Costs struct {
	Cooldown          float64 `toml:"cooldown"`
	Health            float64 `toml:"health"`
	Stamina           float64 `toml:"stamina"`
	Mana              float64 `toml:"mana"`
	Durability        float64 `toml:"durability"`
	DurabilityPercent float64 `toml:"durability_percent"`
}

// Entity is the raw data the description overlay derives rows and bars from
type Entity struct {
	ID      ID
	Name    string
	Kind    Kind
	Effects []Effect
	Costs   Costs

	// Contains is the water entity held by a water container, zero when empty
	Contains ID

	MaxDurability     float64
	DepletionRate     float64
	ImpactResistance  float64
	BarrierProtection float64
	Weapon            *Weapon
}

// IsSkill reports whether rows come from costs instead of effects
func (e Entity) IsSkill() bool {
	return e.Kind == KindSkill
}

// IsIngestible reports whether the entity is eaten or drunk
func (e Entity) IsIngestible() bool {
	return e.Kind == KindIngestible || e.Kind == KindWater
}

// IsPerishable reports whether the entity shows a freshness bar instead of durability
func (e Entity) IsPerishable() bool {
	return e.DepletionRate > 0 && e.Kind != KindEquipment
}

// Source is the entity data collaborator
type Source interface {
	Entity(id ID) (Entity, bool)
	WaterEffects(kind WaterKind) []Effect
}
