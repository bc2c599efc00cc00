// Package dates agrupa helpers de fechas "civiles" (día calendario, sin hora).
//
// Convención: un día calendario se representa como time.Time a medianoche UTC.
// "Hoy" siempre se calcula con la zona horaria configurada y luego se normaliza.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ISODate es el formato de wire para fechas de tareas y filtros.
	ISODate = "2006-01-02"
	// BirthDate es el formato de display de fecha de nacimiento de mascotas (dd/MM/yyyy).
	BirthDate = "02/01/2006"
	// Month es el formato de referencia de mes para el calendario.
	Month = "2006-01"
)

// Day normaliza t al día calendario que corresponde en loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}

// Civil devuelve el día calendario de t tal como está (sin convertir zona).
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compara por día calendario ignorando hora.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseISO parsea YYYY-MM-DD a día calendario.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

func FormatISO(t time.Time) string {
	return t.Format(ISODate)
}

// ParseMonth parsea YYYY-MM y devuelve el primer día del mes.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(Month, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	return t, nil
}

// ParseBirthDate re-parsea el string de display dd/MM/yyyy.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(BirthDate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("birth_date must be dd/mm/yyyy: %w", err)
	}
	return t, nil
}

// Age describe la edad entre birth y now en el formato que muestran las alertas
// ("3 years", "1 year", "5 months"). Devuelve "" si birth es posterior a now.
func Age(birth, now time.Time) string {
	birth = Civil(birth)
	now = Civil(now)
	if birth.After(now) {
		return ""
	}

	months := (now.Year()-birth.Year())*12 + int(now.Month()-birth.Month())
	if now.Day() < birth.Day() {
		months--
	}

	years := months / 12
	switch {
	case years == 1:
		return "1 year"
	case years > 1:
		return fmt.Sprintf("%d years", years)
	case months == 1:
		return "1 month"
	default:
		return fmt.Sprintf("%d months", months)
	}
}

// ParseWeekday acepta nombres en inglés ("sunday", "mon", ...).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
