package views

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/platform/logger"
)

// -------------------------
// Test record
// -------------------------

type rec struct {
	id    string
	title string
	desc  string
	pet   string
	tags  []string
	date  time.Time
	bad   bool
}

func (r rec) RecordID() string             { return r.id }
func (r rec) SearchText() (string, string) { return r.title, r.desc }
func (r rec) PetName() string              { return r.pet }
func (r rec) TagList() []string            { return r.tags }

func (r rec) DateValue() (time.Time, error) {
	if r.bad {
		return time.Time{}, errors.New("unparseable")
	}
	return r.date, nil
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recLogger struct {
	entries []logEntry
}

func (l *recLogger) With(map[string]any) logger.Logger { return l }

func (l *recLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }
func (l *recLogger) Info(msg string, f map[string]any)  { l.add("info", msg, f) }
func (l *recLogger) Warn(msg string, f map[string]any)  { l.add("warn", msg, f) }
func (l *recLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }

func (l *recLogger) add(level, msg string, f map[string]any) {
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: f})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func ids(rs []rec) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.id)
	}
	return out
}

func sample() []rec {
	return []rec{
		{id: "1", title: "Clean Rex's feeder", desc: "Clean feeder and waterer", pet: "Rex", tags: []string{"Clean", "Weekly"}, date: day(2024, 10, 4)},
		{id: "2", title: "Groom Rex", desc: "Brush Rex's coat", pet: "Rex", tags: []string{"Grooming", "Weekly"}, date: day(2024, 10, 6)},
		{id: "3", title: "Take Rex to the vet", desc: "Annual vaccination", pet: "Rex", tags: []string{"Health", "Yearly"}, date: day(2024, 10, 16)},
		{id: "4", title: "Buy new toys", desc: "Interactive toys for MAX", pet: "Max", tags: []string{"Play", "Monthly"}, date: day(2024, 10, 20)},
	}
}

// -------------------------
// Filter
// -------------------------

func TestFilter_NoCriteria_IsIdentity(t *testing.T) {
	in := sample()
	out := Filter(in, Criteria{}, logger.Nop())

	if diff := cmp.Diff(ids(in), ids(out)); diff != "" {
		t.Fatalf("filter with empty criteria changed the set (-want +got):\n%s", diff)
	}
	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{DateRange: &DateRange{}}.IsZero())
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	in := sample()
	before := ids(in)

	out := Filter(in, Criteria{SelectedPet: ptr("Max")}, nil)
	require.Len(t, out, 1)

	out[0].title = "changed"
	assert.Equal(t, before, ids(in))
	assert.Equal(t, "Buy new toys", in[3].title)
}

func TestFilter_SearchText_CaseInsensitive_TitleOrDescription(t *testing.T) {
	in := sample()

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(in, Criteria{SearchText: "rex"}, nil)))
	assert.Equal(t, []string{"4"}, ids(Filter(in, Criteria{SearchText: "max"}, nil)))
	assert.Equal(t, []string{"3"}, ids(Filter(in, Criteria{SearchText: "VACCIN"}, nil)))
	assert.Empty(t, Filter(in, Criteria{SearchText: "walk"}, nil))
}

func TestFilter_SelectedPet_ExactMatch(t *testing.T) {
	in := sample()
	assert.Equal(t, []string{"4"}, ids(Filter(in, Criteria{SelectedPet: ptr("Max")}, nil)))
	assert.Empty(t, Filter(in, Criteria{SelectedPet: ptr("max")}, nil))
}

func TestFilter_Tags_OrWithin_AndAcross(t *testing.T) {
	in := sample()

	got := Filter(in, Criteria{SelectedTags: []string{"Health", "Play"}}, nil)
	assert.Equal(t, []string{"3", "4"}, ids(got))

	got = Filter(in, Criteria{SelectedTags: []string{"Weekly"}, SearchText: "groom"}, nil)
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_Tags_NoOverlap_IsEmpty(t *testing.T) {
	in := []rec{{id: "1", tags: []string{"Clean", "Weekly"}, date: day(2024, 10, 4)}}
	assert.Empty(t, Filter(in, Criteria{SelectedTags: []string{"Health"}}, nil))
}

func TestFilter_DateRange(t *testing.T) {
	in := sample()

	closed := Criteria{DateRange: &DateRange{From: ptr(day(2024, 10, 6)), To: ptr(day(2024, 10, 16))}}
	assert.Equal(t, []string{"2", "3"}, ids(Filter(in, closed, nil)), "closed interval includes both ends")

	onlyFrom := Criteria{DateRange: &DateRange{From: ptr(day(2024, 10, 16))}}
	assert.Equal(t, []string{"3", "4"}, ids(Filter(in, onlyFrom, nil)))

	onlyTo := Criteria{DateRange: &DateRange{To: ptr(day(2024, 10, 6))}}
	assert.Equal(t, []string{"1", "2"}, ids(Filter(in, onlyTo, nil)))
}

func TestFilter_DateErrors_FailOpen(t *testing.T) {
	in := sample()
	in = append(in, rec{id: "bad", bad: true})

	log := &recLogger{}
	crit := Criteria{DateRange: &DateRange{From: ptr(day(2024, 10, 16))}}
	assert.Equal(t, []string{"3", "4", "bad"}, ids(Filter(in, crit, log)))

	require.Len(t, log.entries, 1)
	assert.Equal(t, "warn", log.entries[0].level)
	assert.Equal(t, "date filtering error", log.entries[0].msg)
	assert.Equal(t, "bad", log.entries[0].fields["record_id"])
	assert.Equal(t, "unparseable", log.entries[0].fields["error"])
}

func TestFilter_InvertedRange_FailOpen(t *testing.T) {
	in := sample()

	log := &recLogger{}
	inverted := Criteria{DateRange: &DateRange{From: ptr(day(2024, 10, 20)), To: ptr(day(2024, 10, 1))}}
	assert.Equal(t, ids(in), ids(Filter(in, inverted, log)), "inverted range must not exclude")

	require.Len(t, log.entries, len(in))
	for i, e := range log.entries {
		assert.Equal(t, "warn", e.level)
		assert.Equal(t, in[i].id, e.fields["record_id"])
		assert.Equal(t, ErrInvertedRange.Error(), e.fields["error"])
	}
}

// -------------------------
// Buckets / sort
// -------------------------

func TestBucketByDay_Partition(t *testing.T) {
	now := time.Date(2024, 10, 4, 15, 30, 0, 0, time.UTC)
	in := []rec{
		{id: "past", date: day(2024, 10, 3)},
		{id: "today", date: day(2024, 10, 4)},
		{id: "tomorrow", date: day(2024, 10, 5)},
		{id: "later", date: day(2024, 10, 7)},
		{id: "today-2", date: day(2024, 10, 4)},
		{id: "bad", bad: true},
	}

	b := BucketByDay(in, now, time.UTC, nil)
	assert.Equal(t, []string{"today", "today-2"}, ids(b.Today))
	assert.Equal(t, []string{"tomorrow"}, ids(b.Tomorrow))
	assert.Equal(t, []string{"later"}, ids(b.Upcoming))

	seen := map[string]int{}
	for _, group := range [][]rec{b.Today, b.Tomorrow, b.Upcoming} {
		for _, r := range group {
			seen[r.id]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s appears in more than one bucket", id)
	}
	assert.NotContains(t, seen, "past")
}

func TestBucketByDay_UsesLocationForToday(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	// 01:00 UTC del 5 = 20:00 del 4 en Bogotá
	now := time.Date(2024, 10, 5, 1, 0, 0, 0, time.UTC)

	in := []rec{{id: "a", date: day(2024, 10, 4)}, {id: "b", date: day(2024, 10, 5)}}
	b := BucketByDay(in, now, bogota, nil)
	assert.Equal(t, []string{"a"}, ids(b.Today))
	assert.Equal(t, []string{"b"}, ids(b.Tomorrow))
}

func TestSortByDateDesc_StableAndIdempotent(t *testing.T) {
	in := []rec{
		{id: "a", date: day(2024, 10, 8)},
		{id: "b", date: day(2024, 10, 6)},
		{id: "c", date: day(2024, 10, 10)},
		{id: "d", date: day(2024, 10, 8)},
		{id: "x", bad: true},
	}

	once := SortByDateDesc(in)
	assert.Equal(t, []string{"c", "a", "d", "b", "x"}, ids(once))

	twice := SortByDateDesc(once)
	if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
		t.Fatalf("sort is not idempotent (-once +twice):\n%s", diff)
	}
	assert.Equal(t, "a", in[0].id, "source must not be reordered")
}

// -------------------------
// Calendar
// -------------------------

func TestBuildGrid_October2024_SundayStart(t *testing.T) {
	grid := BuildGrid(day(2024, 10, 16), time.Sunday)

	require.Len(t, grid, 35)
	assert.Equal(t, day(2024, 9, 29), grid[0])
	assert.Equal(t, day(2024, 10, 1), grid[2])
	assert.Equal(t, day(2024, 11, 2), grid[34])
}

func TestBuildGrid_MondayStart(t *testing.T) {
	grid := BuildGrid(day(2024, 10, 1), time.Monday)

	require.Len(t, grid, 35)
	assert.Equal(t, day(2024, 9, 30), grid[0])
	assert.Equal(t, time.Monday, grid[0].Weekday())
	assert.Equal(t, day(2024, 11, 3), grid[34])
}

func TestBuildGrid_Properties(t *testing.T) {
	for _, ws := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
		for y := 2015; y <= 2030; y++ {
			for m := time.January; m <= time.December; m++ {
				grid := BuildGrid(day(y, m, 1), ws)

				if len(grid)%7 != 0 {
					t.Fatalf("%d-%02d ws=%s: len %d is not a multiple of 7", y, m, ws, len(grid))
				}
				if grid[0].Weekday() != ws {
					t.Fatalf("%d-%02d ws=%s: grid starts on %s", y, m, ws, grid[0].Weekday())
				}

				var inMonth []time.Time
				for _, d := range grid {
					if d.Month() == m && d.Year() == y {
						inMonth = append(inMonth, d)
					}
				}
				want := make([]time.Time, 0)
				for d := day(y, m, 1); d.Month() == m; d = d.AddDate(0, 0, 1) {
					want = append(want, d)
				}
				if diff := cmp.Diff(want, inMonth); diff != "" {
					t.Fatalf("%d-%02d ws=%s: month days mismatch (-want +got):\n%s", y, m, ws, diff)
				}
			}
		}
	}
}

func TestHasEntryOn_And_OnDay(t *testing.T) {
	in := sample()
	in = append(in, rec{id: "bad", bad: true})

	assert.True(t, HasEntryOn(in, time.Date(2024, 10, 16, 18, 0, 0, 0, time.UTC)))
	assert.False(t, HasEntryOn(in, day(2024, 10, 17)))

	assert.Equal(t, []string{"3"}, ids(OnDay(in, day(2024, 10, 16))))
	assert.Empty(t, OnDay(in, day(2024, 10, 17)))
}

// -------------------------
// Query
// -------------------------

func TestParseCriteria(t *testing.T) {
	q := url.Values{}
	q.Set("q", "  rex ")
	q.Set("pet", "Rex")
	q.Set("tags", "Health, ,Weekly")
	q.Set("to", "2024-10-16")

	c, err := ParseCriteria(q)
	require.NoError(t, err)
	assert.Equal(t, "rex", c.SearchText)
	require.NotNil(t, c.SelectedPet)
	assert.Equal(t, "Rex", *c.SelectedPet)
	assert.Equal(t, []string{"Health", "Weekly"}, c.SelectedTags)
	require.NotNil(t, c.DateRange)
	assert.Nil(t, c.DateRange.From)
	assert.Equal(t, day(2024, 10, 16), *c.DateRange.To)

	empty, err := ParseCriteria(url.Values{})
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	bad := url.Values{}
	bad.Set("from", "16/10/2024")
	_, err = ParseCriteria(bad)
	assert.Error(t, err)
}
