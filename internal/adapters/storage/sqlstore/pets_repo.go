package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-care-companion/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

const petColumns = `id, name, type, breed, birth_date, image_url, created_at, updated_at`

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO pets (`+petColumns+`)
		VALUES (?,?,?,?,?,?,?,?)
	`),
		p.ID,
		p.Name,
		string(p.Type),
		p.Breed,
		p.BirthDate,
		p.ImageURL,
		encodeTime(p.CreatedAt),
		encodeTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.s.db.ExecContext(ctx, r.s.q(`
		UPDATE pets
		SET
			name = ?,
			type = ?,
			breed = ?,
			birth_date = ?,
			image_url = ?,
			updated_at = ?
		WHERE id = ?
	`),
		p.Name,
		string(p.Type),
		p.Breed,
		p.BirthDate,
		p.ImageURL,
		encodeTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(`SELECT `+petColumns+` FROM pets WHERE id = ?`), id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(sc scanner) (pets.Pet, error) {
	var (
		p                    pets.Pet
		typ                  string
		createdAt, updatedAt string
	)
	if err := sc.Scan(
		&p.ID,
		&p.Name,
		&typ,
		&p.Breed,
		&p.BirthDate,
		&p.ImageURL,
		&createdAt,
		&updatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.Type(typ)

	var err error
	if p.CreatedAt, err = decodeTime(createdAt); err != nil {
		return pets.Pet{}, err
	}
	if p.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}
