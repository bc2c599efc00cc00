package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-care-companion/internal/platform/factory"
	"pet-care-companion/internal/router"
	"pet-care-companion/internal/seed"
)

func TestHTTP_EndToEnd_TaskDeleteConfirmation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	today := time.Now().UTC().Format("2006-01-02")

	// 1) Mascota para el selector
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{"name": "Rex", "type": "Dog"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
		}
	}
	{
		var opts struct {
			Pets []string `json:"pets"`
			Tags []string `json:"tags"`
		}
		st := doJSON(t, ts.URL, "GET", "/tasks/options", nil, &opts)
		if st != http.StatusOK || len(opts.Pets) != 1 || opts.Pets[0] != "Rex" || len(opts.Tags) != 8 {
			t.Fatalf("unexpected options: status=%d %+v", st, opts)
		}
	}

	// 2) Alta de tarea para hoy
	taskID := createTask(t, ts.URL, map[string]any{
		"title": "Feed Rex",
		"pet":   "Rex",
		"date":  today,
		"tags":  []string{"Food", "Food"},
	})

	{
		var b struct {
			Today []struct {
				ID   string   `json:"id"`
				Tags []string `json:"tags"`
			} `json:"today"`
		}
		st := doJSON(t, ts.URL, "GET", "/tasks", nil, &b)
		if st != http.StatusOK || len(b.Today) != 1 || b.Today[0].ID != taskID {
			t.Fatalf("expected task in today bucket, got status=%d %+v", st, b)
		}
		if len(b.Today[0].Tags) != 1 {
			t.Fatalf("expected deduped tags, got %v", b.Today[0].Tags)
		}
	}

	// 3) Toggle
	{
		var got struct {
			Completed bool `json:"completed"`
		}
		st := doJSON(t, ts.URL, "POST", "/tasks/"+taskID+"/toggle", nil, &got)
		if st != http.StatusOK || !got.Completed {
			t.Fatalf("expected toggled task, got status=%d %+v", st, got)
		}
	}

	// 4) Stage + cancel: no se borra nada
	stageDelete(t, ts.URL, taskID)
	{
		var c confirmation
		st := doJSON(t, ts.URL, "GET", "/confirmations/task-delete", nil, &c)
		if st != http.StatusOK || c.State != "staged" {
			t.Fatalf("expected staged, got status=%d %+v", st, c)
		}
	}
	{
		var c confirmation
		st := doJSON(t, ts.URL, "POST", "/confirmations/task-delete/cancel", nil, &c)
		if st != http.StatusOK || c.State != "idle" {
			t.Fatalf("expected idle after cancel, got status=%d %+v", st, c)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/tasks/"+taskID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected task to survive cancel, got %d", st)
		}
	}

	// 5) Stage + confirm: se borra exactamente esa
	stageDelete(t, ts.URL, taskID)
	{
		st, body := doReq(t, ts.URL, "POST", "/confirmations/task-delete/confirm", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 confirm, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/tasks/"+taskID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}

	// 6) Confirmar sin nada pendiente
	{
		st, _ := doReq(t, ts.URL, "POST", "/confirmations/task-delete/confirm", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 nothing staged, got %d", st)
		}
	}
}

func TestHTTP_UnknownIDs(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		method, path string
		body         any
	}{
		{"GET", "/tasks/nope", nil},
		{"PUT", "/tasks/nope", map[string]any{"title": "x", "pet": "Rex", "date": "2024-10-04"}},
		{"POST", "/tasks/nope/toggle", nil},
		{"POST", "/tasks/nope/delete", nil},
		{"GET", "/reports/nope", nil},
		{"POST", "/reports/nope/mark-found", nil},
		{"GET", "/pets/nope", nil},
		{"GET", "/confirmations/nope", nil},
		{"POST", "/account/validate/nope", map[string]any{}},
		{"GET", "/profile", nil},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d body=%s", tc.method, tc.path, st, string(body))
		}
	}
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if st := doJSON(t, ts.URL, http.MethodGet, "/swagger/doc.json", nil, &doc); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if doc.Swagger != "2.0" {
		t.Fatalf("expected swagger 2.0, got %q", doc.Swagger)
	}
	for _, p := range []string{"/tasks", "/reports", "/history", "/calendar"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Fatalf("missing path %s in swagger doc", p)
		}
	}
}

func TestHTTP_CreateTask_RequiresFields(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/tasks", map[string]any{"pet": "Rex", "date": "2024-10-04"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing title, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/tasks?from=04/10/2024", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}
}

func TestHTTP_InvertedRange_FailOpen(t *testing.T) {
	repos := factory.Memory()
	if err := seed.Load(context.Background(), repos, time.Now(), time.UTC, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Repos: repos}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/history?from=2024-10-20&to=2024-10-01", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if bytes.Contains(body, []byte("date filtering error")) || bytes.Contains(body, []byte("date range start is after end")) {
		t.Fatalf("diagnostic leaked into response: %s", string(body))
	}

	var entries []map[string]any
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != len(seed.Tasks(time.Now(), time.Now())) {
		t.Fatalf("expected every task kept, got %d", len(entries))
	}
}

func TestHTTP_SeededData_ReportsAndCalendar(t *testing.T) {
	repos := factory.Memory()
	if err := seed.Load(context.Background(), repos, time.Now(), time.UTC, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Repos: repos}))
	defer ts.Close()

	// Alertas: vista propia y de la comunidad sobre la misma colección
	{
		var mine, community []report
		if st := doJSON(t, ts.URL, "GET", "/reports?scope=mine", nil, &mine); st != http.StatusOK || len(mine) != 1 {
			t.Fatalf("expected 1 own report, got status=%d %+v", st, mine)
		}
		if st := doJSON(t, ts.URL, "GET", "/reports?scope=community", nil, &community); st != http.StatusOK || len(community) != 2 {
			t.Fatalf("expected 2 community reports, got status=%d %+v", st, community)
		}

		// ajena: no se puede marcar
		st, _ := doReq(t, ts.URL, "POST", "/reports/"+community[0].ID+"/mark-found", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 on community report, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", "/reports/"+mine[0].ID+"/mark-found", nil)
		if st != http.StatusAccepted {
			t.Fatalf("expected 202 stage mark-found, got %d body=%s", st, string(body))
		}

		var c struct {
			Candidate report `json:"candidate"`
		}
		if st := doJSON(t, ts.URL, "POST", "/confirmations/report-mark-found/confirm", nil, &c); st != http.StatusOK || c.Candidate.Status != "found" {
			t.Fatalf("expected found after confirm, got status=%d %+v", st, c)
		}

		st, _ = doReq(t, ts.URL, "POST", "/reports/"+mine[0].ID+"/mark-found", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on already found report, got %d", st)
		}
	}

	// Calendario octubre 2024
	{
		var cal struct {
			Month string `json:"month"`
			Days  []struct {
				Date       string `json:"date"`
				InMonth    bool   `json:"in_month"`
				IsSelected bool   `json:"is_selected"`
				HasTasks   bool   `json:"has_tasks"`
			} `json:"days"`
		}
		st := doJSON(t, ts.URL, "GET", "/calendar?month=2024-10&selected=2024-10-16", nil, &cal)
		if st != http.StatusOK || len(cal.Days) != 35 {
			t.Fatalf("expected 35 cells, got status=%d len=%d", st, len(cal.Days))
		}
		if cal.Days[0].Date != "2024-09-29" || cal.Days[0].InMonth {
			t.Fatalf("expected grid to start on Sunday 2024-09-29, got %+v", cal.Days[0])
		}
		found := false
		for _, d := range cal.Days {
			if d.Date == "2024-10-16" {
				found = d.IsSelected && d.HasTasks
			}
		}
		if !found {
			t.Fatalf("expected 2024-10-16 selected with tasks")
		}

		var day []struct {
			Title string `json:"title"`
		}
		if st := doJSON(t, ts.URL, "GET", "/calendar/days/2024-10-16/tasks", nil, &day); st != http.StatusOK || len(day) != 1 {
			t.Fatalf("expected 1 task on 2024-10-16, got status=%d %+v", st, day)
		}
	}

	// Perfil con borrador
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/profile/draft", map[string]any{"name": "Jane Doe"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 edit draft, got %d", st)
		}
		var p struct {
			Name     string `json:"name"`
			Initials string `json:"initials"`
		}
		if st := doJSON(t, ts.URL, "GET", "/profile", nil, &p); st != http.StatusOK || p.Name != "John Doe" {
			t.Fatalf("expected displayed profile untouched, got status=%d %+v", st, p)
		}
		if st := doJSON(t, ts.URL, "POST", "/profile/draft/submit", nil, &p); st != http.StatusOK || p.Initials != "JD" || p.Name != "Jane Doe" {
			t.Fatalf("expected submitted profile, got status=%d %+v", st, p)
		}
	}
}

// -------------------------
// helpers
// -------------------------

type confirmation struct {
	Kind  string `json:"kind"`
	State string `json:"state"`
}

type report struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	IsOwner bool   `json:"is_owner"`
}

func createTask(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	var out struct {
		ID string `json:"id"`
	}
	st := doJSON(t, baseURL, "POST", "/tasks", payload, &out)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create task, got %d", st)
	}
	if out.ID == "" {
		t.Fatalf("expected task id")
	}
	return out.ID
}

func stageDelete(t *testing.T, baseURL, taskID string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/tasks/"+taskID+"/delete", nil)
	if st != http.StatusAccepted {
		t.Fatalf("expected 202 stage delete, got %d body=%s", st, string(body))
	}
}

func doJSON(t *testing.T, baseURL, method, path string, payload any, out any) int {
	t.Helper()

	st, body := doReq(t, baseURL, method, path, payload)
	if st >= 200 && st < 300 && out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("unmarshal %s %s: %v body=%s", method, path, err, string(body))
		}
	}
	return st
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
