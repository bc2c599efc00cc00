package views

import (
	"time"

	"pet-care-companion/internal/platform/dates"
)

// BuildGrid arma la grilla de un mes: días del mes anterior hasta completar la
// primera semana, todos los días del mes y días del mes siguiente hasta cerrar
// la última. El largo siempre es múltiplo de 7.
//
// weekStart define la primera columna (time.Sunday reproduce "Su Mo ... Sa").
func BuildGrid(month time.Time, weekStart time.Weekday) []time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	lead := weekdayIndex(first.Weekday(), weekStart)
	trail := 6 - weekdayIndex(last.Weekday(), weekStart)

	days := make([]time.Time, 0, lead+last.Day()+trail)
	for i := lead; i > 0; i-- {
		days = append(days, first.AddDate(0, 0, -i))
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	for i := 1; i <= trail; i++ {
		days = append(days, last.AddDate(0, 0, i))
	}
	return days
}

// weekdayIndex: 0 = primer día de la semana configurado.
func weekdayIndex(d, weekStart time.Weekday) int {
	return (int(d) - int(weekStart) + 7) % 7
}

// HasEntryOn hace un scan lineal buscando algún record en el mismo día calendario.
// Records con fecha ilegible no cuentan.
func HasEntryOn[T Record](records []T, day time.Time) bool {
	for _, r := range records {
		d, err := r.DateValue()
		if err != nil {
			continue
		}
		if dates.SameDay(d, day) {
			return true
		}
	}
	return false
}

// OnDay devuelve los records del día indicado, en orden de entrada.
func OnDay[T Record](records []T, day time.Time) []T {
	out := make([]T, 0)
	for _, r := range records {
		d, err := r.DateValue()
		if err != nil {
			continue
		}
		if dates.SameDay(d, day) {
			out = append(out, r)
		}
	}
	return out
}
