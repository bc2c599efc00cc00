package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-care-companion/internal/domain/reports"
)

type reportRepo struct {
	s *Store
}

const reportColumns = `id, title, date, description, location,
	pet_id, pet_name, pet_type, pet_age,
	status, is_owner, images, tags,
	created_at, updated_at, found_at`

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) error {
	images, err := encodeList(rep.Images)
	if err != nil {
		return err
	}
	tags, err := encodeList(rep.Tags)
	if err != nil {
		return err
	}

	var foundAt sql.NullString
	if rep.FoundAt != nil {
		foundAt = sql.NullString{String: encodeTime(*rep.FoundAt), Valid: true}
	}

	_, err = r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO reports (`+reportColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`),
		rep.ID,
		rep.Title,
		rep.Date,
		rep.Description,
		rep.Location,
		rep.Pet.ID,
		rep.Pet.Name,
		rep.Pet.Type,
		rep.Pet.Age,
		string(rep.Status),
		rep.IsOwner,
		images,
		tags,
		encodeTime(rep.CreatedAt),
		encodeTime(rep.UpdatedAt),
		foundAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(`
		SELECT `+reportColumns+` FROM reports WHERE id = ?
	`), id)

	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reports.Report{}, reports.ErrNotFound
		}
		return reports.Report{}, err
	}
	return rep, nil
}

func (r *reportRepo) List(ctx context.Context) ([]reports.Report, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	out := make([]reports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *reportRepo) SetStatus(ctx context.Context, id string, status reports.Status, at time.Time) (reports.Report, error) {
	var foundAt sql.NullString
	if status == reports.StatusFound {
		foundAt = sql.NullString{String: encodeTime(at), Valid: true}
	}

	res, err := r.s.db.ExecContext(ctx, r.s.q(`
		UPDATE reports SET status = ?, updated_at = ?, found_at = ? WHERE id = ?
	`), string(status), encodeTime(at), foundAt, id)
	if err != nil {
		return reports.Report{}, fmt.Errorf("update report status: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return reports.Report{}, err
	}
	if !ok {
		return reports.Report{}, reports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func scanReport(sc scanner) (reports.Report, error) {
	var (
		rep                  reports.Report
		status               string
		images, tags         string
		createdAt, updatedAt string
		foundAt              sql.NullString
	)
	if err := sc.Scan(
		&rep.ID,
		&rep.Title,
		&rep.Date,
		&rep.Description,
		&rep.Location,
		&rep.Pet.ID,
		&rep.Pet.Name,
		&rep.Pet.Type,
		&rep.Pet.Age,
		&status,
		&rep.IsOwner,
		&images,
		&tags,
		&createdAt,
		&updatedAt,
		&foundAt,
	); err != nil {
		return reports.Report{}, err
	}

	rep.Status = reports.Status(status)

	var err error
	if rep.Images, err = decodeList(images); err != nil {
		return reports.Report{}, err
	}
	if rep.Tags, err = decodeList(tags); err != nil {
		return reports.Report{}, err
	}
	if rep.CreatedAt, err = decodeTime(createdAt); err != nil {
		return reports.Report{}, err
	}
	if rep.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return reports.Report{}, err
	}
	if foundAt.Valid {
		t, err := decodeTime(foundAt.String)
		if err != nil {
			return reports.Report{}, err
		}
		rep.FoundAt = &t
	}
	return rep, nil
}
