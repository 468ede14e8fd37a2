package entity

// Effect is one atomic gameplay modifier attached to an entity or a status
// The set of implementations is closed: Affect, AddStatus, RemoveStatus, Unknown
type Effect interface {
	isEffect()
}

// AffectKind enumerates the simple numeric deltas
type AffectKind uint8

const (
	AffectHealth AffectKind = iota
	AffectStamina
	AffectMana
	AffectMaxHealth
	AffectMaxStamina
	AffectMaxMana
	AffectFood
	AffectDrink
	AffectFatigue
	AffectCorruption
)

var affectNames = [...]string{
	AffectHealth:     "health",
	AffectStamina:    "stamina",
	AffectMana:       "mana",
	AffectMaxHealth:  "max_health",
	AffectMaxStamina: "max_stamina",
	AffectMaxMana:    "max_mana",
	AffectFood:       "food",
	AffectDrink:      "drink",
	AffectFatigue:    "fatigue",
	AffectCorruption: "corruption",
}

func (k AffectKind) String() string {
	if int(k) < len(affectNames) {
		return affectNames[k]
	}
	return "unknown"
}

// Affect changes a vital, max vital, need or corruption by Amount
// Needs and corruption are stored in tenths of a percent
type Affect struct {
	Kind   AffectKind
	Amount float64
}

// AddStatus applies Status with a Chance percentage (100 = always)
type AddStatus struct {
	Status *Status
	Chance int
}

// RemoveScope selects what a RemoveStatus cleanses
type RemoveScope uint8

const (
	RemoveSpecific RemoveScope = iota
	RemoveType
	RemoveFamily
	RemoveNegative
)

// RemoveStatus cleanses statuses; Target names the status, tag or family depending on Scope
type RemoveStatus struct {
	Scope  RemoveScope
	Target string
}

// Unknown carries effect kinds the runtime does not describe
type Unknown struct {
	Name string
}

func (Affect) isEffect()       {}
func (AddStatus) isEffect()    {}
func (RemoveStatus) isEffect() {}
func (Unknown) isEffect()      {}

// Status is a timed status effect definition
// Effects and Data are parallel: Data[i] holds the raw per-tick values of Effects[i]
type Status struct {
	ID       string
	Name     string
	Lifespan float64
	Effects  []Effect
	Data     [][]string
}

// HasEffectsAndData reports whether the status carries at least one effect and one data slot
func (s *Status) HasEffectsAndData() bool {
	return s != nil && len(s.Effects) > 0 && len(s.Data) > 0
}
