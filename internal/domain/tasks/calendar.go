package tasks

import (
	"context"
	"time"

	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/views"
)

// CalendarDay es una celda de la grilla mensual.
type CalendarDay struct {
	Date       time.Time
	InMonth    bool
	IsToday    bool
	IsSelected bool
	HasTasks   bool
}

type Calendar struct {
	Month     time.Time
	WeekStart time.Weekday
	Selected  time.Time
	Days      []CalendarDay
}

// Calendar arma la grilla de month marcando hoy, el día seleccionado y los días con tareas.
// selected en zero value = hoy.
func (s *Service) Calendar(ctx context.Context, month, selected time.Time) (Calendar, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Calendar{}, err
	}

	today := s.Today()
	if selected.IsZero() {
		selected = today
	}
	selected = dates.Civil(selected)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	grid := views.BuildGrid(first, s.weekStart)
	days := make([]CalendarDay, 0, len(grid))
	for _, d := range grid {
		days = append(days, CalendarDay{
			Date:       d,
			InMonth:    d.Month() == first.Month(),
			IsToday:    d.Equal(today),
			IsSelected: d.Equal(selected),
			HasTasks:   views.HasEntryOn(all, d),
		})
	}

	return Calendar{
		Month:     first,
		WeekStart: s.weekStart,
		Selected:  selected,
		Days:      days,
	}, nil
}

// OnDay lista las tareas de un día, en orden de inserción.
func (s *Service) OnDay(ctx context.Context, day time.Time) ([]Task, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.OnDay(all, day), nil
}
