package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/confirm"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/views"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	items []Report
}

func (r *testRepo) Create(ctx context.Context, rep Report) error {
	r.items = append(r.items, rep)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Report, error) {
	for _, rep := range r.items {
		if rep.ID == id {
			return rep, nil
		}
	}
	return Report{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Report, error) {
	return append([]Report(nil), r.items...), nil
}

func (r *testRepo) SetStatus(ctx context.Context, id string, status Status, at time.Time) (Report, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = at
			if status == StatusFound {
				r.items[i].FoundAt = &at
			}
			return r.items[i], nil
		}
	}
	return Report{}, ErrNotFound
}

type testPets struct {
	byID map[string]pets.Pet
}

func (p testPets) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	pet, ok := p.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return pet, nil
}

func (p testPets) Age(pet pets.Pet) string {
	if pet.BirthDate == "" {
		return ""
	}
	return "3 years"
}

type warnEntry struct {
	msg    string
	fields map[string]any
}

// recLogger guarda solo los warnings.
type recLogger struct {
	warns []warnEntry
}

func (l *recLogger) With(map[string]any) logger.Logger { return l }

func (l *recLogger) Debug(string, map[string]any) {}
func (l *recLogger) Info(string, map[string]any)  {}
func (l *recLogger) Error(string, map[string]any) {}

func (l *recLogger) Warn(msg string, f map[string]any) {
	l.warns = append(l.warns, warnEntry{msg: msg, fields: f})
}

var fixedNow = time.Date(2025, 2, 20, 14, 0, 0, 0, time.UTC)

func newTestService(seed ...Report) (*Service, *testRepo) {
	repo := &testRepo{items: seed}
	lookup := testPets{byID: map[string]pets.Pet{
		"rex": {ID: "rex", Name: "Rex", Type: pets.TypeDog, Breed: "Golden Retriever", BirthDate: "08/12/2021"},
		"tom": {ID: "tom", Name: "Tom", Type: pets.TypeCat},
	}}
	svc := NewService(repo, lookup, Options{DefaultLocation: "Bogotá, Colombia"})
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func seedReports() []Report {
	return []Report{
		{ID: "1", Title: "Rex is missing", Date: "2025-02-20", Pet: PetSnapshot{Name: "Rex"}, Status: StatusMissing, IsOwner: true, Tags: []string{"Clean", "Weekly"}},
		{ID: "2", Title: "Max is missing", Date: "2025-02-20", Pet: PetSnapshot{Name: "Max"}, Status: StatusMissing, IsOwner: false, Tags: []string{"Clean", "Weekly"}},
		{ID: "3", Title: "Bella is missing", Date: "2025-02-18", Pet: PetSnapshot{Name: "Bella"}, Status: StatusMissing, IsOwner: false},
	}
}

func reportIDs(items []Report) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

// -------------------------
// Tests
// -------------------------

func TestCreate_SnapshotsPetAndDefaults(t *testing.T) {
	svc, repo := newTestService()

	rep, err := svc.Create(context.Background(), CreateInput{
		Title:       "Rex is missing",
		PetID:       "rex",
		Description: "Last seen in Simón Bolivar Park",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "2025-02-20", rep.Date)
	assert.Equal(t, "Bogotá, Colombia", rep.Location)
	assert.Equal(t, PetSnapshot{ID: "rex", Name: "Rex", Type: "Golden Retriever", Age: "3 years"}, rep.Pet)
	assert.Equal(t, StatusMissing, rep.Status)
	assert.True(t, rep.IsOwner)
	assert.Equal(t, []string{PlaceholderImage, PlaceholderImage}, rep.Images)
	assert.Equal(t, []string{}, rep.Tags)
	require.Len(t, repo.items, 1)
}

func TestCreate_PetWithoutBreedUsesType(t *testing.T) {
	svc, _ := newTestService()

	rep, err := svc.Create(context.Background(), CreateInput{Title: "Tom", PetID: "tom", Description: "Gray cat", Location: "Medellín"})
	require.NoError(t, err)
	assert.Equal(t, "Cat", rep.Pet.Type)
	assert.Equal(t, "", rep.Pet.Age)
	assert.Equal(t, "Medellín", rep.Location)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	cases := []CreateInput{
		{PetID: "rex", Description: "x"},
		{Title: "x", Description: "x"},
		{Title: "x", PetID: "rex"},
		{Title: "x", PetID: "ghost", Description: "x"},
		{Title: "x", PetID: "rex", Description: "x", Images: []string{"https://example.com/rex.jpg"}},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Empty(t, repo.items)
}

func TestList_Scopes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(seedReports()...)

	mine, err := svc.List(ctx, ScopeMine, views.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, reportIDs(mine))

	community, err := svc.List(ctx, ScopeCommunity, views.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, reportIDs(community))

	all, err := svc.List(ctx, ScopeAll, views.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, reportIDs(all))

	_, err = svc.List(ctx, Scope("nearby"), views.Criteria{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_TagsWithoutOverlap_IsEmpty(t *testing.T) {
	svc, _ := newTestService(seedReports()[:2]...)

	got, err := svc.List(context.Background(), ScopeAll, views.Criteria{SelectedTags: []string{"Health"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_UnparseableDate_FailOpen(t *testing.T) {
	seed := seedReports()
	seed[2].Date = "yesterday"
	svc, _ := newTestService(seed...)

	log := &recLogger{}
	svc.log = log

	from := time.Date(2025, 2, 19, 0, 0, 0, 0, time.UTC)
	got, err := svc.List(context.Background(), ScopeAll, views.Criteria{DateRange: &views.DateRange{From: &from}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, reportIDs(got))

	require.Len(t, log.warns, 1)
	assert.Equal(t, "date filtering error", log.warns[0].msg)
	assert.Equal(t, "3", log.warns[0].fields["record_id"])
	assert.NotEmpty(t, log.warns[0].fields["error"])
}

func TestMarkFound_StageThenCancel(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(seedReports()...)

	_, err := svc.StageMarkFound(ctx, "1")
	require.NoError(t, err)

	_, ok := svc.CancelMarkFound()
	require.True(t, ok)
	assert.Equal(t, seedReports(), repo.items)

	_, err = svc.ConfirmMarkFound(ctx)
	assert.ErrorIs(t, err, confirm.ErrNothingStaged)
}

func TestMarkFound_StageThenConfirm(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(seedReports()...)

	_, err := svc.StageMarkFound(ctx, "1")
	require.NoError(t, err)

	rep, err := svc.ConfirmMarkFound(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusFound, rep.Status)
	require.NotNil(t, rep.FoundAt)

	assert.Equal(t, StatusFound, repo.items[0].Status)
	assert.Equal(t, StatusMissing, repo.items[1].Status)

	// one-way: no se puede volver a stagear
	_, err = svc.StageMarkFound(ctx, "1")
	assert.ErrorIs(t, err, ErrBadState)
}

func TestMarkFound_Rules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(seedReports()...)

	_, err := svc.StageMarkFound(ctx, "2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.StageMarkFound(ctx, "99")
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := svc.PendingMarkFound()
	assert.False(t, ok)
}

func TestMarkFound_AlreadyFoundAtConfirm(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(seedReports()...)

	_, err := svc.StageMarkFound(ctx, "1")
	require.NoError(t, err)

	// alguien la marcó por otro camino entre stage y confirm
	_, err = repo.SetStatus(ctx, "1", StatusFound, fixedNow)
	require.NoError(t, err)

	_, err = svc.ConfirmMarkFound(ctx)
	assert.ErrorIs(t, err, ErrBadState)

	_, ok := svc.PendingMarkFound()
	assert.False(t, ok)
}
