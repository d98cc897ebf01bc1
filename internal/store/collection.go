// Package store keeps the console's in-memory view of the backend's
// authoritative collections. Stores are dumb normalized caches: no
// foreign-key or uniqueness checks, just ordered records and mutators.
package store

// collection is one ordered sequence of records keyed by idOf.
type collection[T any] struct {
	records []T
	idOf    func(T) int64
}

// set replaces the whole collection, keeping the caller's order.
func (c *collection[T]) set(records []T) {
	c.records = append([]T(nil), records...)
}

func (c *collection[T]) add(rec T) {
	c.records = append(c.records, rec)
}

// update replaces the record with a matching id; no-op when absent.
func (c *collection[T]) update(rec T) {
	id := c.idOf(rec)
	for i := range c.records {
		if c.idOf(c.records[i]) == id {
			c.records[i] = rec
			return
		}
	}
}

// delete removes the record with a matching id; no-op when absent.
func (c *collection[T]) delete(id int64) {
	for i := range c.records {
		if c.idOf(c.records[i]) == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}

func (c *collection[T]) snapshot() []T {
	return append([]T(nil), c.records...)
}
