package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-companion/internal/confirm"
	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/views"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("task not found")
)

type Service struct {
	repo Repository
	now  func() time.Time

	loc       *time.Location
	weekStart time.Weekday
	log       logger.Logger

	// una sola eliminación pendiente a la vez
	deleteGate *confirm.Gate[Task]
}

type Options struct {
	Location  *time.Location
	WeekStart time.Weekday
	Logger    logger.Logger
}

func NewService(repo Repository, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:       repo,
		now:        time.Now,
		loc:        loc,
		weekStart:  opts.WeekStart,
		log:        log.With(map[string]any{"module": "tasks"}),
		deleteGate: confirm.New[Task](),
	}
}

// SaveInput es el payload del formulario (alta y edición). id y completed los asigna el store.
type SaveInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Pet         string
	Tags        []string
}

func (in SaveInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Pet) == "" {
		missing = append(missing, "pet")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required fields missing: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in SaveInput) (Task, error) {
	if err := in.validate(); err != nil {
		return Task{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Task{}, err
	}

	now := s.now()
	t := Task{
		ID:          id.String(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        dates.Civil(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Pet:         strings.TrimSpace(in.Pet),
		Tags:        NormalizeTags(in.Tags),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}

	s.log.Debug("task created", map[string]any{"task_id": t.ID, "pet": t.Pet})
	return t, nil
}

// Update reemplaza los campos del formulario; id, completed y created_at se conservan.
func (s *Service) Update(ctx context.Context, id string, in SaveInput) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return Task{}, err
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}

	t.Title = strings.TrimSpace(in.Title)
	t.Description = strings.TrimSpace(in.Description)
	t.Date = dates.Civil(in.Date)
	t.Time = strings.TrimSpace(in.Time)
	t.Pet = strings.TrimSpace(in.Pet)
	t.Tags = NormalizeTags(in.Tags)
	t.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) ToggleCompleted(ctx context.Context, id string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrInvalidInput
	}
	return s.repo.ToggleCompleted(ctx, id, s.now())
}

func (s *Service) GetByID(ctx context.Context, id string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve las tareas que cumplen los criterios, en orden de inserción.
func (s *Service) List(ctx context.Context, c views.Criteria) ([]Task, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.Filter(all, c, s.log), nil
}

// Buckets agrupa las tareas filtradas en Today / Tomorrow / Upcoming.
func (s *Service) Buckets(ctx context.Context, c views.Criteria) (views.Buckets[Task], error) {
	filtered, err := s.List(ctx, c)
	if err != nil {
		return views.Buckets[Task]{}, err
	}
	return views.BucketByDay(filtered, s.now(), s.loc, s.log), nil
}

// History es la misma colección vista en orden cronológico inverso, con estado derivado.
func (s *Service) History(ctx context.Context, c views.Criteria) ([]HistoryEntry, error) {
	filtered, err := s.List(ctx, c)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	sorted := views.SortByDateDesc(filtered)

	out := make([]HistoryEntry, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, HistoryEntry{Task: t, Status: StatusOf(t, today)})
	}
	return out, nil
}

// StatusOf: Done si está completada, Missed si su día ya pasó, Upcoming si no.
func StatusOf(t Task, today time.Time) Status {
	switch {
	case t.Completed:
		return StatusDone
	case dates.Civil(t.Date).Before(today):
		return StatusMissed
	default:
		return StatusUpcoming
	}
}

// Today es el día calendario actual en la zona configurada.
func (s *Service) Today() time.Time {
	return dates.Day(s.now(), s.loc)
}

// -------------------------
// Eliminación con confirmación
// -------------------------

// StageDelete deja la tarea como candidata a eliminar. Reemplaza a la anterior, si había.
func (s *Service) StageDelete(ctx context.Context, id string) (Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	s.deleteGate.Stage(t)
	return t, nil
}

func (s *Service) PendingDelete() (Task, bool) {
	return s.deleteGate.Pending()
}

func (s *Service) CancelDelete() (Task, bool) {
	return s.deleteGate.Cancel()
}

// ConfirmDelete elimina la candidata. Devuelve confirm.ErrNothingStaged si no hay ninguna.
func (s *Service) ConfirmDelete(ctx context.Context) (Task, error) {
	t, err := s.deleteGate.Confirm(ctx, func(ctx context.Context, t Task) error {
		return s.repo.Delete(ctx, t.ID)
	})
	if err != nil {
		return t, err
	}
	s.log.Info("task deleted", map[string]any{"task_id": t.ID})
	return t, nil
}

// NormalizeTags recorta, descarta vacíos y elimina duplicados conservando la primera aparición.
// Nunca devuelve nil.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
