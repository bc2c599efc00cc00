package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("profile not found")

// Service separa la copia visible (persistida) del borrador del formulario.
// El borrador vive en memoria y se pierde al descartarlo o al reiniciar.
type Service struct {
	repo Repository
	now  func() time.Time

	mu    sync.Mutex
	draft *Profile
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Displayed devuelve la copia visible.
func (s *Service) Displayed(ctx context.Context) (Profile, error) {
	return s.repo.Get(ctx)
}

// Draft devuelve el borrador; si no hay, arranca como copia de la visible.
func (s *Service) Draft(ctx context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked(ctx)
}

func (s *Service) draftLocked(ctx context.Context) (Profile, error) {
	if s.draft != nil {
		return *s.draft, nil
	}
	p, err := s.repo.Get(ctx)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

// EditDraft aplica el patch sobre el borrador. La copia visible no cambia.
func (s *Service) EditDraft(ctx context.Context, patch Patch) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.draftLocked(ctx)
	if err != nil {
		return Profile{}, err
	}
	d = patch.apply(d)
	s.draft = &d
	return d, nil
}

// SubmitDraft reemplaza la copia visible por el borrador y lo descarta.
// Sin borrador no hay cambios que aplicar y se devuelve la visible tal cual.
func (s *Service) SubmitDraft(ctx context.Context) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return s.repo.Get(ctx)
	}

	p := *s.draft
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	s.draft = nil
	return p, nil
}

// DiscardDraft descarta el borrador (equivale a salir del formulario sin guardar).
func (s *Service) DiscardDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}
