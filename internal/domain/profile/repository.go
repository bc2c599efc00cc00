package profile

import "context"

// Repository guarda solo la copia visible. Los borradores nunca se persisten.
type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
