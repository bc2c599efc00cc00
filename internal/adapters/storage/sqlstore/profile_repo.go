package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-care-companion/internal/domain/profile"
)

// profileRepo guarda una única fila (id = 1).
type profileRepo struct {
	s *Store
}

func (r *profileRepo) Get(ctx context.Context) (profile.Profile, error) {
	row := r.s.db.QueryRowContext(ctx, `
		SELECT name, email, phone, image_url, updated_at FROM profile WHERE id = 1
	`)

	var p profile.Profile
	var updatedAt string
	if err := row.Scan(&p.Name, &p.Email, &p.Phone, &p.ImageURL, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	t, err := decodeTime(updatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	p.UpdatedAt = t
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p profile.Profile) error {
	var updatedAt string
	if !p.UpdatedAt.IsZero() {
		updatedAt = encodeTime(p.UpdatedAt)
	}

	_, err := r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO profile (id, name, email, phone, image_url, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			image_url = excluded.image_url,
			updated_at = excluded.updated_at
	`), p.Name, p.Email, p.Phone, p.ImageURL, updatedAt)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
