package reports

import (
	"context"
	"time"
)

// Repository guarda una única colección: "mías" y "comunidad" son vistas por IsOwner.
type Repository interface {
	Create(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	List(ctx context.Context) ([]Report, error)
	SetStatus(ctx context.Context, id string, status Status, at time.Time) (Report, error)
}
