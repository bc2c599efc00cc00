package reports

import (
	"time"

	"pet-care-companion/internal/platform/dates"
)

// @Enum missing, found
type Status string

const (
	StatusMissing Status = "missing"
	StatusFound   Status = "found"
)

// Scope elige qué vista de la colección se lista.
type Scope string

const (
	ScopeMine      Scope = "mine"
	ScopeCommunity Scope = "community"
	ScopeAll       Scope = "all"
)

// PlaceholderImage es la única referencia de imagen aceptada mientras no haya upload real.
const PlaceholderImage = "/placeholder.svg?height=200&width=200"

// PetSnapshot es una foto de la mascota al momento de crear la alerta.
// No se actualiza si después cambia la mascota.
type PetSnapshot struct {
	ID   string
	Name string
	Type string // raza si la tiene, si no el tipo
	Age  string
}

// Report es una alerta de mascota perdida.
type Report struct {
	ID          string
	Title       string
	Date        string // YYYY-MM-DD tal como se guardó; no se valida
	Description string
	Location    string

	Pet PetSnapshot

	Status  Status
	IsOwner bool

	Images []string
	Tags   []string

	CreatedAt time.Time
	UpdatedAt time.Time
	FoundAt   *time.Time
}

func (r Report) RecordID() string { return r.ID }

func (r Report) SearchText() (string, string) { return r.Title, r.Description }

func (r Report) PetName() string { return r.Pet.Name }

func (r Report) TagList() []string { return r.Tags }

// DateValue parsea Date en cada llamada; puede fallar con fechas mal cargadas.
func (r Report) DateValue() (time.Time, error) {
	return dates.ParseISO(r.Date)
}
