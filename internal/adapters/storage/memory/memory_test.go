package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/domain/profile"
	"pet-care-companion/internal/domain/reports"
	"pet-care-companion/internal/domain/tasks"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ids(items []tasks.Task) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskRepo_InsertionOrderAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, tasks.Task{ID: id, Date: day(2024, 10, 4)}))
	}
	assert.ErrorContains(t, repo.Create(ctx, tasks.Task{ID: "a"}), "already exists")
	assert.Error(t, repo.Create(ctx, tasks.Task{}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids(all))

	require.NoError(t, repo.Delete(ctx, "a"))
	all, _ = repo.List(ctx)
	assert.Equal(t, []string{"c", "b"}, ids(all))
}

func TestTaskRepo_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo()
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "1", Title: "Walk"}))

	assert.ErrorIs(t, repo.Update(ctx, tasks.Task{ID: "2"}), tasks.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "2"), tasks.ErrNotFound)
	_, err := repo.ToggleCompleted(ctx, "2", time.Now())
	assert.ErrorIs(t, err, tasks.ErrNotFound)
	_, err = repo.GetByID(ctx, "2")
	assert.ErrorIs(t, err, tasks.ErrNotFound)

	all, _ := repo.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Walk", all[0].Title)
}

func TestTaskRepo_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo()
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "1"}))

	at := time.Date(2024, 10, 4, 9, 0, 0, 0, time.UTC)
	got, err := repo.ToggleCompleted(ctx, "1", at)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, at, got.UpdatedAt)

	stored, _ := repo.GetByID(ctx, "1")
	assert.True(t, stored.Completed)
}

func TestTaskRepo_CallersCannotMutateStoredTags(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo()

	tags := []string{"Clean", "Weekly"}
	require.NoError(t, repo.Create(ctx, tasks.Task{ID: "1", Tags: tags}))
	tags[0] = "Dirty"

	got, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, []string{"Clean", "Weekly"}, got.Tags)

	got.Tags[1] = "Daily"
	again, _ := repo.GetByID(ctx, "1")
	assert.Equal(t, []string{"Clean", "Weekly"}, again.Tags)
}

func TestReportRepo_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepo()
	require.NoError(t, repo.Create(ctx, reports.Report{ID: "1", Status: reports.StatusMissing, IsOwner: true}))

	at := time.Date(2025, 2, 21, 10, 0, 0, 0, time.UTC)
	got, err := repo.SetStatus(ctx, "1", reports.StatusFound, at)
	require.NoError(t, err)
	assert.Equal(t, reports.StatusFound, got.Status)
	require.NotNil(t, got.FoundAt)
	assert.Equal(t, at, *got.FoundAt)

	_, err = repo.SetStatus(ctx, "nope", reports.StatusFound, at)
	assert.ErrorIs(t, err, reports.ErrNotFound)
}

func TestProfileRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepo()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, profile.ErrNotFound)

	require.NoError(t, repo.Save(ctx, profile.Profile{Name: "John Doe"}))
	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
}
