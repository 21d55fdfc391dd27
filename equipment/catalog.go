package equipment

import (
	"maps"
	"slices"
)

// Catalog resolves equipment ids into their static stats. Implementations are
// read-only once built and may be shared by any number of units.
type Catalog interface {
	Get(id int) (Stats, bool)
}

// Table is an in-memory Catalog keyed by equipment id.
type Table map[int]Stats

// NewTable builds a Table from a list of stats. Later entries win on duplicate ids.
func NewTable(stats ...Stats) Table {
	t := make(Table, len(stats))
	for _, s := range stats {
		t[s.ID] = s
	}
	return t
}

func (t Table) Get(id int) (Stats, bool) {
	s, ok := t[id]
	return s, ok
}

// IDs returns the equipment ids of the table in ascending order.
func (t Table) IDs() []int {
	return slices.Sorted(maps.Keys(t))
}

// OfClass returns the ids of every entry of the given class, ascending.
func (t Table) OfClass(class UnitClass) []int {
	var ids []int
	for _, id := range t.IDs() {
		if t[id].Class == class {
			ids = append(ids, id)
		}
	}
	return ids
}

// Lookup returns the stats for id, or zero stats carrying only the id when the
// catalog does not know it.
func Lookup(c Catalog, id int) Stats {
	if s, ok := c.Get(id); ok {
		return s
	}
	return Stats{ID: id}
}
