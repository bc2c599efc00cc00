package memory

import (
	"context"
	"slices"
	"time"

	"pet-care-companion/internal/domain/tasks"
)

type taskRepo struct {
	c *collection[tasks.Task]
}

func NewTaskRepo() tasks.Repository {
	return &taskRepo{
		c: newCollection(
			func(t tasks.Task) string { return t.ID },
			func(t tasks.Task) tasks.Task {
				t.Tags = slices.Clone(t.Tags)
				return t
			},
		),
	}
}

func (r *taskRepo) Create(ctx context.Context, t tasks.Task) error {
	return r.c.add(t)
}

func (r *taskRepo) Update(ctx context.Context, t tasks.Task) error {
	if !r.c.replace(t) {
		return tasks.ErrNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	if !r.c.remove(id) {
		return tasks.ErrNotFound
	}
	return nil
}

func (r *taskRepo) ToggleCompleted(ctx context.Context, id string, at time.Time) (tasks.Task, error) {
	t, ok := r.c.update(id, func(t *tasks.Task) {
		t.Completed = !t.Completed
		t.UpdatedAt = at
	})
	if !ok {
		return tasks.Task{}, tasks.ErrNotFound
	}
	return t, nil
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	t, ok := r.c.get(id)
	if !ok {
		return tasks.Task{}, tasks.ErrNotFound
	}
	return t, nil
}

func (r *taskRepo) List(ctx context.Context) ([]tasks.Task, error) {
	return r.c.all(), nil
}
