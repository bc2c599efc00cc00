// Package confirm implementa la mutación en dos pasos: primero se "stagea" un
// candidato y solo un Confirm explícito aplica el cambio.
//
// Estados: idle -> staged -> idle (por Cancel o por Confirm).
package confirm

import (
	"context"
	"errors"
	"sync"
)

// ErrNothingStaged se devuelve al confirmar sin candidato.
var ErrNothingStaged = errors.New("nothing staged")

type State string

const (
	StateIdle   State = "idle"
	StateStaged State = "staged"
)

// ApplyFunc aplica la mutación sobre el candidato confirmado.
type ApplyFunc[T any] func(ctx context.Context, candidate T) error

// Gate mantiene a lo sumo un candidato por tipo de acción.
// El zero value es usable (idle).
type Gate[T any] struct {
	mu        sync.Mutex
	candidate T
	staged    bool
}

func New[T any]() *Gate[T] {
	return &Gate[T]{}
}

// Stage guarda el candidato. Si ya había uno, se reemplaza sin aviso (el último gana).
func (g *Gate[T]) Stage(candidate T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.candidate = candidate
	g.staged = true
}

// Cancel descarta el candidato sin mutar nada. ok=false si no había nada.
func (g *Gate[T]) Cancel() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.candidate, g.staged
	g.reset()
	return c, ok
}

// Confirm aplica la mutación exactamente una vez y vuelve a idle.
// El candidato se descarta aunque apply falle: para reintentar hay que volver a stagear.
func (g *Gate[T]) Confirm(ctx context.Context, apply ApplyFunc[T]) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero T
	if !g.staged {
		return zero, ErrNothingStaged
	}

	c := g.candidate
	g.reset()

	if err := apply(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

// Pending devuelve el candidato actual, si lo hay.
func (g *Gate[T]) Pending() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.candidate, g.staged
}

func (g *Gate[T]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.staged {
		return StateStaged
	}
	return StateIdle
}

func (g *Gate[T]) reset() {
	var zero T
	g.candidate = zero
	g.staged = false
}
