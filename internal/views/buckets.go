package views

import (
	"sort"
	"time"

	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/platform/logger"
)

type Bucket string

const (
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketUpcoming Bucket = "upcoming"
)

// Buckets es una partición disjunta del set filtrado.
type Buckets[T Record] struct {
	Today    []T
	Tomorrow []T
	Upcoming []T
}

// Classify ubica un día calendario respecto de "hoy" (en loc).
// ok=false para días pasados: no pertenecen a ningún bucket.
func Classify(day, now time.Time, loc *time.Location) (Bucket, bool) {
	today := dates.Day(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	day = dates.Civil(day)

	switch {
	case day.Equal(today):
		return BucketToday, true
	case day.Equal(tomorrow):
		return BucketTomorrow, true
	case day.After(tomorrow):
		// Pasado mañana en adelante ya es posterior al instante actual.
		return BucketUpcoming, true
	default:
		return "", false
	}
}

// BucketByDay reparte records en Today/Tomorrow/Upcoming preservando el orden de entrada.
// Los días pasados quedan fuera (se ven en el historial), igual que los que no tienen
// fecha evaluable.
func BucketByDay[T Record](records []T, now time.Time, loc *time.Location, log logger.Logger) Buckets[T] {
	if log == nil {
		log = logger.Nop()
	}

	b := Buckets[T]{
		Today:    make([]T, 0),
		Tomorrow: make([]T, 0),
		Upcoming: make([]T, 0),
	}

	for _, r := range records {
		d, err := r.DateValue()
		if err != nil {
			log.Warn("bucketing: unreadable date", map[string]any{
				"record_id": r.RecordID(),
				"error":     err.Error(),
			})
			continue
		}

		bucket, ok := Classify(d, now, loc)
		if !ok {
			continue
		}
		switch bucket {
		case BucketToday:
			b.Today = append(b.Today, r)
		case BucketTomorrow:
			b.Tomorrow = append(b.Tomorrow, r)
		case BucketUpcoming:
			b.Upcoming = append(b.Upcoming, r)
		}
	}
	return b
}

// SortByDateDesc devuelve una copia ordenada por fecha desc (más reciente primero).
// Orden estable; fechas ilegibles se tratan como zero time y van al final.
func SortByDateDesc[T Record](records []T) []T {
	keys := make([]time.Time, len(records))
	idx := make([]int, len(records))
	for i, r := range records {
		d, err := r.DateValue()
		if err != nil {
			d = time.Time{}
		}
		keys[i] = d
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].After(keys[idx[b]])
	})

	out := make([]T, 0, len(records))
	for _, i := range idx {
		out = append(out, records[i])
	}
	return out
}
