package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-companion/internal/confirm"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/views"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("report not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadState     = errors.New("invalid state")
)

// PetLookup resuelve la mascota elegida en el formulario.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	Age(p pets.Pet) string
}

type Service struct {
	repo Repository
	pets PetLookup
	now  func() time.Time

	loc             *time.Location
	defaultLocation string
	log             logger.Logger

	markFoundGate *confirm.Gate[Report]
}

type Options struct {
	Location        *time.Location
	DefaultLocation string
	Logger          logger.Logger
}

func NewService(repo Repository, petLookup PetLookup, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:            repo,
		pets:            petLookup,
		now:             time.Now,
		loc:             loc,
		defaultLocation: strings.TrimSpace(opts.DefaultLocation),
		log:             log.With(map[string]any{"module": "reports"}),
		markFoundGate:   confirm.New[Report](),
	}
}

// CreateInput omite id, isOwner y status: los asigna el servicio.
type CreateInput struct {
	Title       string
	PetID       string
	Description string
	Location    string
	Images      []string
	Tags        []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Report, error) {
	title := strings.TrimSpace(in.Title)
	petID := strings.TrimSpace(in.PetID)
	desc := strings.TrimSpace(in.Description)

	if title == "" || petID == "" || desc == "" {
		return Report{}, fmt.Errorf("%w: please fill in all required fields", ErrInvalidInput)
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Report{}, fmt.Errorf("%w: please select a valid pet", ErrInvalidInput)
		}
		return Report{}, err
	}

	images, err := normalizeImages(in.Images)
	if err != nil {
		return Report{}, err
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = s.defaultLocation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Report{}, err
	}

	now := s.now()
	r := Report{
		ID:          id.String(),
		Title:       title,
		Date:        dates.FormatISO(dates.Day(now, s.loc)),
		Description: desc,
		Location:    location,
		Pet: PetSnapshot{
			ID:   p.ID,
			Name: p.Name,
			Type: p.Kind(),
			Age:  s.pets.Age(p),
		},
		Status:    StatusMissing,
		IsOwner:   true,
		Images:    images,
		Tags:      normalizeTags(in.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}

	s.log.Info("report created", map[string]any{"report_id": r.ID, "pet": r.Pet.Name})
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// List filtra la vista pedida: mine (IsOwner), community (!IsOwner) o all.
func (s *Service) List(ctx context.Context, scope Scope, c views.Criteria) ([]Report, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]Report, 0, len(all))
	for _, r := range all {
		switch scope {
		case ScopeMine:
			if !r.IsOwner {
				continue
			}
		case ScopeCommunity:
			if r.IsOwner {
				continue
			}
		case ScopeAll, "":
		default:
			return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, scope)
		}
		scoped = append(scoped, r)
	}

	return views.Filter(scoped, c, s.log), nil
}

// UploadImage no sube nada: devuelve la referencia placeholder.
func (s *Service) UploadImage(filename string) string {
	s.log.Debug("image upload stubbed", map[string]any{"filename": filename})
	return PlaceholderImage
}

// -------------------------
// missing -> found con confirmación
// -------------------------

// StageMarkFound deja la alerta pendiente de marcarse como encontrada.
// Solo alertas propias y todavía en missing.
func (s *Service) StageMarkFound(ctx context.Context, id string) (Report, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if !r.IsOwner {
		return Report{}, ErrForbidden
	}
	if r.Status != StatusMissing {
		return Report{}, fmt.Errorf("%w: report is already %s", ErrBadState, r.Status)
	}
	s.markFoundGate.Stage(r)
	return r, nil
}

func (s *Service) PendingMarkFound() (Report, bool) {
	return s.markFoundGate.Pending()
}

func (s *Service) CancelMarkFound() (Report, bool) {
	return s.markFoundGate.Cancel()
}

// ConfirmMarkFound aplica la transición. La alerta se relee: si otra confirmación
// ya la marcó, devuelve ErrBadState sin tocar nada.
func (s *Service) ConfirmMarkFound(ctx context.Context) (Report, error) {
	var updated Report
	_, err := s.markFoundGate.Confirm(ctx, func(ctx context.Context, c Report) error {
		cur, err := s.repo.GetByID(ctx, c.ID)
		if err != nil {
			return err
		}
		if cur.Status != StatusMissing {
			return fmt.Errorf("%w: report is already %s", ErrBadState, cur.Status)
		}
		updated, err = s.repo.SetStatus(ctx, c.ID, StatusFound, s.now())
		return err
	})
	if err != nil {
		return Report{}, err
	}

	s.log.Info("report marked as found", map[string]any{"report_id": updated.ID})
	return updated, nil
}

func normalizeImages(in []string) ([]string, error) {
	if len(in) == 0 {
		return []string{PlaceholderImage, PlaceholderImage}, nil
	}
	out := make([]string, 0, len(in))
	for _, img := range in {
		img = strings.TrimSpace(img)
		if !strings.HasPrefix(img, "/placeholder.svg") {
			return nil, fmt.Errorf("%w: only placeholder images are supported", ErrInvalidInput)
		}
		out = append(out, img)
	}
	return out, nil
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
