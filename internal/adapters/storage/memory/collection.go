// Package memory implementa los repositorios en memoria (backend por defecto).
// Cada colección es un slice ordenado por inserción protegido por un RWMutex.
package memory

import (
	"errors"
	"strings"
	"sync"
)

var (
	errIDRequired    = errors.New("id required")
	errAlreadyExists = errors.New("already exists")
)

// collection guarda los registros en orden de alta. Las búsquedas son lineales.
// clone evita que quien llama comparta slices internos con el store.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
	clone func(T) T
}

func newCollection[T any](idOf func(T) string, clone func(T) T) *collection[T] {
	return &collection[T]{idOf: idOf, clone: clone}
}

func (c *collection[T]) indexLocked(id string) int {
	for i, it := range c.items {
		if c.idOf(it) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	if strings.TrimSpace(id) == "" {
		return errIDRequired
	}
	if c.indexLocked(id) >= 0 {
		return errAlreadyExists
	}
	c.items = append(c.items, c.clone(item))
	return nil
}

// replace devuelve false si el id no existe; en ese caso no muta nada.
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(c.idOf(item))
	if i < 0 {
		return false
	}
	c.items[i] = c.clone(item)
	return true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// update aplica fn sobre el registro con ese id y devuelve la versión nueva.
func (c *collection[T]) update(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexLocked(id)
	if i < 0 {
		return zero, false
	}
	fn(&c.items[i])
	return c.clone(c.items[i]), true
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	i := c.indexLocked(id)
	if i < 0 {
		return zero, false
	}
	return c.clone(c.items[i]), true
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, c.clone(it))
	}
	return out
}
