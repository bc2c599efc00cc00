package views

import (
	"fmt"
	"net/url"
	"strings"

	"pet-care-companion/internal/platform/dates"
)

// ParseCriteria arma Criteria desde la query de un request:
// q, pet, tags (CSV), from, to (YYYY-MM-DD).
func ParseCriteria(q url.Values) (Criteria, error) {
	var c Criteria

	c.SearchText = strings.TrimSpace(q.Get("q"))

	if pet := strings.TrimSpace(q.Get("pet")); pet != "" {
		c.SelectedPet = &pet
	}

	if raw := strings.TrimSpace(q.Get("tags")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				c.SelectedTags = append(c.SelectedTags, t)
			}
		}
	}

	var dr DateRange
	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := dates.ParseISO(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("from: %w", err)
		}
		dr.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := dates.ParseISO(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("to: %w", err)
		}
		dr.To = &t
	}
	if dr.From != nil || dr.To != nil {
		c.DateRange = &dr
	}

	return c, nil
}
