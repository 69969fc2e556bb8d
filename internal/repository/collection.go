package repository

import (
	"sync"

	"go-admin-panel/internal/model"
)

// Collection is an insertion-ordered, id-unique in-memory record list with an
// optional single selection. It is safe for concurrent use; every read returns
// copies produced by the clone function.
type Collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	idOf     func(T) string
	clone    func(T) T
	selected string
}

func NewCollection[T any](idOf func(T) string, clone func(T) T, seed []T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}

	c := &Collection[T]{idOf: idOf, clone: clone}
	for _, item := range seed {
		c.items = append(c.items, clone(item))
	}
	return c
}

func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked(c.items)
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		var zero T
		return zero, model.ErrNotFound
	}
	return c.clone(c.items[idx]), nil
}

// Add appends item.
func (c *Collection[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(c.idOf(item)) >= 0 {
		return model.ErrAlreadyExists
	}
	c.items = append(c.items, c.clone(item))
	return nil
}

// Prepend inserts item at the head, the newest-first order used by logs.
func (c *Collection[T]) Prepend(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(c.idOf(item)) >= 0 {
		return model.ErrAlreadyExists
	}
	c.items = append([]T{c.clone(item)}, c.items...)
	return nil
}

// Update applies mutate to a copy of the record and stores the result. The id
// cannot change. mutate may return an error to abort without storing.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	idx := c.indexLocked(id)
	if idx < 0 {
		return zero, model.ErrNotFound
	}

	next := c.clone(c.items[idx])
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if c.idOf(next) != id {
		return zero, model.ErrInvalidInput
	}

	c.items[idx] = next
	return c.clone(next), nil
}

func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return model.ErrNotFound
	}

	c.items = append(c.items[:idx], c.items[idx+1:]...)
	if c.selected == id {
		c.selected = ""
	}
	return nil
}

// Filter returns the records matching pred in insertion order. A nil pred
// matches everything.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred == nil || pred(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// Select marks id as the current selection; an empty id clears it.
func (c *Collection[T]) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		c.selected = ""
		return nil
	}
	if c.indexLocked(id) < 0 {
		return model.ErrNotFound
	}
	c.selected = id
	return nil
}

func (c *Collection[T]) Selected() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if c.selected == "" {
		return zero, false
	}
	idx := c.indexLocked(c.selected)
	if idx < 0 {
		return zero, false
	}
	return c.clone(c.items[idx]), true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Truncate keeps the first max records and reports how many were dropped.
func (c *Collection[T]) Truncate(max int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if max < 0 || len(c.items) <= max {
		return 0
	}

	dropped := c.items[max:]
	for _, item := range dropped {
		if c.idOf(item) == c.selected {
			c.selected = ""
		}
	}
	n := len(dropped)
	c.items = c.items[:max:max]
	return n
}

func (c *Collection[T]) indexLocked(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) copyLocked(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = c.clone(item)
	}
	return out
}
