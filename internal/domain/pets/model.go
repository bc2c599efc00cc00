package pets

import "time"

// Type es el tipo de mascota. El formulario ofrece estos valores pero se acepta texto libre.
// @Enum Dog, Cat, Bird, Fish, Other
type Type string

const (
	TypeDog   Type = "Dog"
	TypeCat   Type = "Cat"
	TypeBird  Type = "Bird"
	TypeFish  Type = "Fish"
	TypeOther Type = "Other"
)

var KnownTypes = []Type{TypeDog, TypeCat, TypeBird, TypeFish, TypeOther}

// Pet representa una mascota del perfil.
type Pet struct {
	ID    string
	Name  string
	Type  Type
	Breed string

	// BirthDate se guarda como se muestra (dd/mm/yyyy); para operar hay que re-parsearla.
	BirthDate string
	ImageURL  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind es lo que se muestra como "tipo" en una alerta: la raza si hay, si no el tipo.
func (p Pet) Kind() string {
	if p.Breed != "" {
		return p.Breed
	}
	return string(p.Type)
}
