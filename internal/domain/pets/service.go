package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-companion/internal/platform/dates"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SaveInput sirve para alta y para edición (reemplazo completo).
type SaveInput struct {
	Name      string
	Type      string
	Breed     string
	BirthDate string // dd/mm/yyyy, opcional
	ImageURL  string
}

func (in SaveInput) normalize() (SaveInput, error) {
	out := SaveInput{
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: strings.TrimSpace(in.BirthDate),
		ImageURL:  strings.TrimSpace(in.ImageURL),
	}
	if out.Name == "" {
		return SaveInput{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if out.Type == "" {
		out.Type = string(TypeOther)
	}
	if out.BirthDate != "" {
		if _, err := dates.ParseBirthDate(out.BirthDate); err != nil {
			return SaveInput{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in SaveInput) (Pet, error) {
	in, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        id.String(),
		Name:      in.Name,
		Type:      Type(in.Type),
		Breed:     in.Breed,
		BirthDate: in.BirthDate,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza todos los campos editables de la mascota.
func (s *Service) Update(ctx context.Context, id string, in SaveInput) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	in, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	p.Name = in.Name
	p.Type = Type(in.Type)
	p.Breed = in.Breed
	p.BirthDate = in.BirthDate
	p.ImageURL = in.ImageURL
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// PetNames devuelve los nombres sin repetir, en orden de alta.
func (s *Service) PetNames(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(items))
	seen := map[string]bool{}
	for _, p := range items {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p.Name)
	}
	return out, nil
}

// Age describe la edad actual de la mascota ("3 years"). "" si no tiene fecha o no se puede leer.
func (s *Service) Age(p Pet) string {
	if p.BirthDate == "" {
		return ""
	}
	bd, err := dates.ParseBirthDate(p.BirthDate)
	if err != nil {
		return ""
	}
	return dates.Age(bd, s.now())
}
