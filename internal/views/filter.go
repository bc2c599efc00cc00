// Package views contiene las vistas derivadas sobre colecciones en memoria:
// filtro por criterios, buckets Today/Tomorrow/Upcoming, orden por fecha
// y la grilla del calendario. Nada de lo que hay acá muta la colección origen.
package views

import (
	"errors"
	"strings"
	"time"

	"pet-care-companion/internal/platform/logger"
)

// ErrInvertedRange indica un rango con from > to.
var ErrInvertedRange = errors.New("date range start is after end")

// Record es lo mínimo que una entidad expone para ser filtrada.
// DateValue puede fallar (ej: fechas guardadas como string sin parsear).
type Record interface {
	RecordID() string
	SearchText() (title, description string)
	PetName() string
	TagList() []string
	DateValue() (time.Time, error)
}

// DateRange: ambos extremos opcionales, cerrado en ambos lados.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Criteria de filtro. Campo ausente (zero value / nil / vacío) = sin restricción.
type Criteria struct {
	SearchText   string
	SelectedPet  *string
	SelectedTags []string
	DateRange    *DateRange
}

// IsZero indica que los criterios no restringen nada.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.SearchText) == "" &&
		c.SelectedPet == nil &&
		len(c.SelectedTags) == 0 &&
		(c.DateRange == nil || (c.DateRange.From == nil && c.DateRange.To == nil))
}

// Filter aplica todos los criterios en una pasada (AND entre criterios).
// Devuelve un slice nuevo; records no se modifica.
func Filter[T Record](records []T, c Criteria, log logger.Logger) []T {
	if log == nil {
		log = logger.Nop()
	}

	q := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]T, 0, len(records))
	for _, r := range records {
		if q != "" && !matchesText(r, q) {
			continue
		}
		if c.SelectedPet != nil && r.PetName() != *c.SelectedPet {
			continue
		}
		if len(c.SelectedTags) > 0 && !hasAnyTag(r.TagList(), c.SelectedTags) {
			continue
		}
		if c.DateRange != nil {
			ok, err := inRange(r, *c.DateRange)
			if err != nil {
				// fail-open: el registro queda, solo dejamos rastro para devs
				log.Warn("date filtering error", map[string]any{
					"record_id": r.RecordID(),
					"error":     err.Error(),
				})
			} else if !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func matchesText(r Record, q string) bool {
	title, desc := r.SearchText()
	return strings.Contains(strings.ToLower(title), q) ||
		strings.Contains(strings.ToLower(desc), q)
}

// OR dentro del filtro de tags.
func hasAnyTag(tags, selected []string) bool {
	for _, s := range selected {
		for _, t := range tags {
			if t == s {
				return true
			}
		}
	}
	return false
}

func inRange(r Record, dr DateRange) (bool, error) {
	if dr.From == nil && dr.To == nil {
		return true, nil
	}

	d, err := r.DateValue()
	if err != nil {
		return false, err
	}

	switch {
	case dr.From != nil && dr.To != nil:
		if dr.From.After(*dr.To) {
			return false, ErrInvertedRange
		}
		return !d.Before(*dr.From) && !d.After(*dr.To), nil
	case dr.From != nil:
		return !d.Before(*dr.From), nil
	default:
		return !d.After(*dr.To), nil
	}
}
