package profile

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Profile es el único perfil del usuario.
type Profile struct {
	Name     string
	Email    string
	Phone    string
	ImageURL string

	UpdatedAt time.Time
}

// Initials toma la primera letra de cada palabra del nombre ("John Doe" -> "JD").
func (p Profile) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(p.Name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}

// Patch acumula cambios sobre el borrador. nil = no tocar.
type Patch struct {
	Name     *string
	Email    *string
	Phone    *string
	ImageURL *string
}

func (p Patch) apply(to Profile) Profile {
	if p.Name != nil {
		to.Name = *p.Name
	}
	if p.Email != nil {
		to.Email = *p.Email
	}
	if p.Phone != nil {
		to.Phone = *p.Phone
	}
	if p.ImageURL != nil {
		to.ImageURL = *p.ImageURL
	}
	return to
}
