package entity

import "sort"

// Catalog is an in-memory Source
type Catalog struct {
	entities map[ID]Entity
	statuses map[string]*Status
	water    map[WaterKind][]Effect
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entities: make(map[ID]Entity),
		statuses: make(map[string]*Status),
		water:    make(map[WaterKind][]Effect),
	}
}

// Add stores or replaces an entity
func (c *Catalog) Add(e Entity) {
	c.entities[e.ID] = e
}

// AddStatus stores a status definition by its ID
func (c *Catalog) AddStatus(s *Status) {
	c.statuses[s.ID] = s
}

// SetWater sets the canonical effect set for a water kind
func (c *Catalog) SetWater(kind WaterKind, effects []Effect) {
	c.water[kind] = effects
}

// Entity implements Source
func (c *Catalog) Entity(id ID) (Entity, bool) {
	e, ok := c.entities[id]
	return e, ok
}

// WaterEffects implements Source
func (c *Catalog) WaterEffects(kind WaterKind) []Effect {
	return c.water[kind]
}

// Status returns a status definition by ID
func (c *Catalog) Status(id string) (*Status, bool) {
	s, ok := c.statuses[id]
	return s, ok
}

// IDs returns all entity ids in ascending order
func (c *Catalog) IDs() []ID {
	ids := make([]ID, 0, len(c.entities))
	for id := range c.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of entities
func (c *Catalog) Len() int {
	return len(c.entities)
}
