package memory

import (
	"context"

	"pet-care-companion/internal/domain/pets"
)

type petRepo struct {
	c *collection[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		c: newCollection(
			func(p pets.Pet) string { return p.ID },
			func(p pets.Pet) pets.Pet { return p },
		),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.c.add(p)
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if !r.c.replace(p) {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := r.c.get(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.c.all(), nil
}
