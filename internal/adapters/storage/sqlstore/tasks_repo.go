package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-care-companion/internal/domain/tasks"
	"pet-care-companion/internal/platform/dates"
)

type taskRepo struct {
	s *Store
}

const taskColumns = `id, title, description, date, time, pet, tags, completed, created_at, updated_at`

func (r *taskRepo) Create(ctx context.Context, t tasks.Task) error {
	tags, err := encodeList(t.Tags)
	if err != nil {
		return err
	}

	_, err = r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`),
		t.ID,
		t.Title,
		t.Description,
		dates.FormatISO(t.Date),
		t.Time,
		t.Pet,
		tags,
		t.Completed,
		encodeTime(t.CreatedAt),
		encodeTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *taskRepo) Update(ctx context.Context, t tasks.Task) error {
	tags, err := encodeList(t.Tags)
	if err != nil {
		return err
	}

	res, err := r.s.db.ExecContext(ctx, r.s.q(`
		UPDATE tasks
		SET
			title = ?,
			description = ?,
			date = ?,
			time = ?,
			pet = ?,
			tags = ?,
			completed = ?,
			updated_at = ?
		WHERE id = ?
	`),
		t.Title,
		t.Description,
		dates.FormatISO(t.Date),
		t.Time,
		t.Pet,
		tags,
		t.Completed,
		encodeTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return tasks.ErrNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, r.s.q(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return tasks.ErrNotFound
	}
	return nil
}

func (r *taskRepo) ToggleCompleted(ctx context.Context, id string, at time.Time) (tasks.Task, error) {
	res, err := r.s.db.ExecContext(ctx, r.s.q(`
		UPDATE tasks SET completed = NOT completed, updated_at = ? WHERE id = ?
	`), encodeTime(at), id)
	if err != nil {
		return tasks.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return tasks.Task{}, err
	}
	if !ok {
		return tasks.Task{}, tasks.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(`
		SELECT `+taskColumns+` FROM tasks WHERE id = ?
	`), id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tasks.Task{}, tasks.ErrNotFound
		}
		return tasks.Task{}, err
	}
	return t, nil
}

func (r *taskRepo) List(ctx context.Context) ([]tasks.Task, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTask(sc scanner) (tasks.Task, error) {
	var (
		t                    tasks.Task
		date, tags           string
		createdAt, updatedAt string
	)
	if err := sc.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&date,
		&t.Time,
		&t.Pet,
		&tags,
		&t.Completed,
		&createdAt,
		&updatedAt,
	); err != nil {
		return tasks.Task{}, err
	}

	var err error
	if date != "" {
		if t.Date, err = dates.ParseISO(date); err != nil {
			return tasks.Task{}, fmt.Errorf("task %s: %w", t.ID, err)
		}
	}
	if t.Tags, err = decodeList(tags); err != nil {
		return tasks.Task{}, err
	}
	if t.CreatedAt, err = decodeTime(createdAt); err != nil {
		return tasks.Task{}, err
	}
	if t.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return tasks.Task{}, err
	}
	return t, nil
}
