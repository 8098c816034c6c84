// Package registry provides in-memory, insertion-ordered registries for
// users and tasks. Each registry owns its records, keyed by a unique int64
// identifier, and hands out a monotonic next-id counter for records created
// without an explicit id. Every fallible operation returns (payload, error)
// with a sentinel error; callers compare with errors.Is. Failed operations
// never leave partial writes behind.
package registry

import "slices"

// store is the keyed container shared by both registries: a hash index for
// lookups plus a parallel insertion-order slice so listing and search results
// are stable. It is not safe for concurrent use on its own; the owning
// registry holds the lock.
type store[T any] struct {
	records map[int64]T
	order   []int64
	nextID  int64
}

func newStore[T any]() *store[T] {
	return &store[T]{
		records: make(map[int64]T),
		nextID:  1,
	}
}

// get retrieves a record by id.
func (s *store[T]) get(id int64) (T, bool) {
	v, ok := s.records[id]
	return v, ok
}

// insert stores a new record. Returns ErrDuplicateID if the id is taken.
// Explicit ids at or past the counter advance it, so assigned and supplied
// ids never collide.
func (s *store[T]) insert(id int64, v T) error {
	if _, exists := s.records[id]; exists {
		return ErrDuplicateID
	}
	s.records[id] = v
	s.order = append(s.order, id)
	if id >= s.nextID {
		s.nextID = id + 1
	}
	return nil
}

// replace overwrites an existing record in place, keeping its position in
// the insertion order. The caller must have checked existence.
func (s *store[T]) replace(id int64, v T) {
	s.records[id] = v
}

// remove deletes a record and reports whether one existed.
func (s *store[T]) remove(id int64) bool {
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(o int64) bool { return o == id })
	return true
}

// list returns all records in insertion order.
func (s *store[T]) list() []T {
	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

// len returns the number of stored records.
func (s *store[T]) len() int {
	return len(s.records)
}
