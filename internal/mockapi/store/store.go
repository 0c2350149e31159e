package store

import (
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Repository is an in-memory table of records with sequential int64 ids.
// Records are listed in creation order.
type Repository[T any] struct {
	getID func(*T) int64
	setID func(*T, int64)

	mu     sync.RWMutex
	rows   []T
	nextID int64
}

// NewRepository creates an empty Repository. getID and setID access the id
// field of T.
func NewRepository[T any](getID func(*T) int64, setID func(*T, int64)) *Repository[T] {
	return &Repository[T]{getID: getID, setID: setID, nextID: 1}
}

// Create assigns the next id to rec, stores it and returns the stored copy.
func (r *Repository[T]) Create(rec T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setID(&rec, r.nextID)
	r.nextID++
	r.rows = append(r.rows, rec)
	return rec
}

// List returns all records in creation order, never nil.
func (r *Repository[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]T, 0, len(r.rows)), r.rows...)
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.rows[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// Find returns the first record matching fn.
func (r *Repository[T]) Find(fn func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.rows {
		if fn(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Update applies fn to the stored record and returns the result. The id
// cannot be changed by fn.
func (r *Repository[T]) Update(id int64, fn func(*T)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	rec := r.rows[i]
	fn(&rec)
	r.setID(&rec, id)
	r.rows[i] = rec
	return rec, nil
}

// Delete removes the record with the given id.
func (r *Repository[T]) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return ErrNotFound
	}
	r.rows = slices.Delete(r.rows, i, i+1)
	return nil
}

func (r *Repository[T]) index(id int64) int {
	for i := range r.rows {
		if r.getID(&r.rows[i]) == id {
			return i
		}
	}
	return -1
}
