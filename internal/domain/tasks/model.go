package tasks

import (
	"errors"
	"time"
)

var errNoDate = errors.New("task has no date")

// Task es un recordatorio de cuidado para una mascota.
type Task struct {
	ID          string
	Title       string
	Description string

	// Día calendario (medianoche UTC). Time es texto libre ("09:00"), sin validar.
	Date time.Time
	Time string

	// Pet es el nombre de la mascota, no una referencia fuerte.
	Pet  string
	Tags []string

	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Task) RecordID() string { return t.ID }

func (t Task) SearchText() (string, string) { return t.Title, t.Description }

func (t Task) PetName() string { return t.Pet }

func (t Task) TagList() []string { return t.Tags }

func (t Task) DateValue() (time.Time, error) {
	if t.Date.IsZero() {
		return time.Time{}, errNoDate
	}
	return t.Date, nil
}

// Status derivado para el historial.
// @Enum Done, Missed, Upcoming
type Status string

const (
	StatusDone     Status = "Done"
	StatusMissed   Status = "Missed"
	StatusUpcoming Status = "Upcoming"
)

// HistoryEntry es una tarea vista desde el historial.
type HistoryEntry struct {
	Task
	Status Status
}

// SuggestedTags son las etiquetas que ofrece el formulario de tareas.
var SuggestedTags = []string{
	"Clean",
	"Grooming",
	"Health",
	"Play",
	"Food",
	"Weekly",
	"Monthly",
	"Yearly",
}
