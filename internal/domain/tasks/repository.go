package tasks

import (
	"context"
	"time"
)

// Repository es la colección ordenada de tareas. List devuelve en orden de inserción.
// Update, Delete y ToggleCompleted devuelven ErrNotFound si el id no existe, sin mutar nada.
type Repository interface {
	Create(ctx context.Context, t Task) error
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
	ToggleCompleted(ctx context.Context, id string, at time.Time) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
}
