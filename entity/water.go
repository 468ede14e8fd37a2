package entity

// WaterItemBaseID is the id of the first water entity; water ids are consecutive by WaterKind
const WaterItemBaseID ID = 5600000

// WaterKind enumerates the water types, ordered as their entity ids
type WaterKind uint8

const (
	WaterClean WaterKind = iota
	WaterFresh
	WaterSalt
	WaterRancid
	WaterMagic
	WaterPure
	WaterHealing
	waterKindCount
)

var waterNames = [...]string{
	WaterClean:   "clean",
	WaterFresh:   "fresh",
	WaterSalt:    "salt",
	WaterRancid:  "rancid",
	WaterMagic:   "magic",
	WaterPure:    "pure",
	WaterHealing: "healing",
}

func (k WaterKind) String() string {
	if k < waterKindCount {
		return waterNames[k]
	}
	return "unknown"
}

// WaterKindOf maps a water entity id to its kind
func WaterKindOf(id ID) (WaterKind, bool) {
	off := id - WaterItemBaseID
	if off < 0 || off >= ID(waterKindCount) {
		return 0, false
	}
	return WaterKind(off), true
}

// WaterID returns the entity id of a water kind
func WaterID(kind WaterKind) ID {
	return WaterItemBaseID + ID(kind)
}

func parseWaterKind(name string) (WaterKind, bool) {
	for i, n := range waterNames {
		if n == name {
			return WaterKind(i), true
		}
	}
	return 0, false
}
