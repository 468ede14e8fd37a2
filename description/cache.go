package description

import (
	"sync/atomic"

	"github.com/lixenwraith/modpack/entity"
	"github.com/lixenwraith/modpack/locale"
	"github.com/lixenwraith/modpack/status"
)

// Cache memoizes the ordered rows of each entity
// Single-threaded by contract: the first build for an id is the only one
type Cache struct {
	src     entity.Source
	builder *Builder
	rows    map[entity.ID][]Row

	hits    *atomic.Int64
	misses  *atomic.Int64
	entries *atomic.Int64
}

// NewCache creates an empty cache over src; metrics go to reg when non-nil
func NewCache(src entity.Source, loc locale.Localizer, reg *status.Registry) *Cache {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Cache{
		src:     src,
		builder: NewBuilder(loc),
		rows:    make(map[entity.ID][]Row),
		hits:    reg.Ints.Get(status.RowsHits),
		misses:  reg.Ints.Get(status.RowsMisses),
		entries: reg.Ints.Get(status.RowsEntries),
	}
}

// Rows returns the cached rows of id, building them on first access
// Unknown ids return nil and are not cached
func (c *Cache) Rows(id entity.ID) []Row {
	if rows, ok := c.rows[id]; ok {
		c.hits.Add(1)
		return rows
	}

	e, ok := c.src.Entity(id)
	if !ok {
		return nil
	}
	c.misses.Add(1)

	rows := c.build(e)
	c.rows[id] = rows
	c.entries.Store(int64(len(c.rows)))
	return rows
}

// Invalidate drops the entry for id so the next Rows call rebuilds it
func (c *Cache) Invalidate(id entity.ID) {
	if _, ok := c.rows[id]; !ok {
		return
	}
	delete(c.rows, id)
	c.entries.Store(int64(len(c.rows)))
}

// Len returns the number of cached entities
func (c *Cache) Len() int {
	return len(c.rows)
}

func (c *Cache) build(e entity.Entity) []Row {
	if e.IsSkill() {
		return c.builder.CostRows(e.Costs)
	}

	effects := e.Effects
	if e.Kind == entity.KindWater {
		if kind, ok := entity.WaterKindOf(e.ID); ok {
			effects = c.src.WaterEffects(kind)
		}
	}
	return c.builder.EffectRows(effects)
}
