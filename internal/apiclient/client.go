// Package apiclient es el cliente tipado de la API de pet-care-companion.
package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-care-companion/internal/platform/httpclient"
	"pet-care-companion/internal/platform/logger"
)

const (
	KindTaskDelete      = "task-delete"
	KindReportMarkFound = "report-mark-found"
)

type Client struct {
	c *httpclient.Client
}

func New(baseURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout, log)
	if err != nil {
		return nil, err
	}
	return &Client{c: hc}, nil
}

// Filter son los criterios comunes de tareas, historial y alertas.
type Filter struct {
	Query string
	Pet   string
	Tags  []string
	From  string
	To    string
}

func (f Filter) values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Pet != "" {
		v.Set("pet", f.Pet)
	}
	if len(f.Tags) > 0 {
		v.Set("tags", strings.Join(f.Tags, ","))
	}
	if f.From != "" {
		v.Set("from", f.From)
	}
	if f.To != "" {
		v.Set("to", f.To)
	}
	return v
}

func (c *Client) Health(ctx context.Context) error {
	return c.c.DoJSON(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// -------------------------
// Tareas
// -------------------------

func (c *Client) ListTasks(ctx context.Context, f Filter) (Buckets, error) {
	var out Buckets
	err := c.c.DoJSON(ctx, http.MethodGet, "/tasks", f.values(), nil, &out)
	return out, err
}

func (c *Client) TaskOptions(ctx context.Context) (TaskOptions, error) {
	var out TaskOptions
	err := c.c.DoJSON(ctx, http.MethodGet, "/tasks/options", nil, nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, in SaveTask) (Task, error) {
	var out Task
	err := c.c.DoJSON(ctx, http.MethodPost, "/tasks", nil, in, &out)
	return out, err
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var out Task
	err := c.c.DoJSON(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, in SaveTask) (Task, error) {
	var out Task
	err := c.c.DoJSON(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), nil, in, &out)
	return out, err
}

func (c *Client) ToggleTask(ctx context.Context, id string) (Task, error) {
	var out Task
	err := c.c.DoJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(id)+"/toggle", nil, nil, &out)
	return out, err
}

// StageTaskDelete deja la tarea pendiente; se aplica con Confirm(KindTaskDelete).
func (c *Client) StageTaskDelete(ctx context.Context, id string) (Task, error) {
	var out Task
	err := c.c.DoJSON(ctx, http.MethodPost, "/tasks/"+url.PathEscape(id)+"/delete", nil, nil, &out)
	return out, err
}

func (c *Client) History(ctx context.Context, f Filter) ([]HistoryEntry, error) {
	var out []HistoryEntry
	err := c.c.DoJSON(ctx, http.MethodGet, "/history", f.values(), nil, &out)
	return out, err
}

// Calendar: month YYYY-MM y selected YYYY-MM-DD son opcionales.
func (c *Client) Calendar(ctx context.Context, month, selected string) (Calendar, error) {
	q := url.Values{}
	if month != "" {
		q.Set("month", month)
	}
	if selected != "" {
		q.Set("selected", selected)
	}
	var out Calendar
	err := c.c.DoJSON(ctx, http.MethodGet, "/calendar", q, nil, &out)
	return out, err
}

func (c *Client) TasksOnDay(ctx context.Context, day string) ([]Task, error) {
	var out []Task
	err := c.c.DoJSON(ctx, http.MethodGet, "/calendar/days/"+url.PathEscape(day)+"/tasks", nil, nil, &out)
	return out, err
}

// -------------------------
// Alertas
// -------------------------

func (c *Client) ListReports(ctx context.Context, scope string, f Filter) ([]Report, error) {
	q := f.values()
	if scope != "" {
		q.Set("scope", scope)
	}
	var out []Report
	err := c.c.DoJSON(ctx, http.MethodGet, "/reports", q, nil, &out)
	return out, err
}

func (c *Client) CreateReport(ctx context.Context, in CreateReport) (Report, error) {
	var out Report
	err := c.c.DoJSON(ctx, http.MethodPost, "/reports", nil, in, &out)
	return out, err
}

func (c *Client) GetReport(ctx context.Context, id string) (Report, error) {
	var out Report
	err := c.c.DoJSON(ctx, http.MethodGet, "/reports/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (c *Client) UploadImage(ctx context.Context, filename string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.c.DoJSON(ctx, http.MethodPost, "/reports/images", nil, map[string]string{"filename": filename}, &out)
	return out.URL, err
}

func (c *Client) StageMarkFound(ctx context.Context, id string) (Report, error) {
	var out Report
	err := c.c.DoJSON(ctx, http.MethodPost, "/reports/"+url.PathEscape(id)+"/mark-found", nil, nil, &out)
	return out, err
}

// -------------------------
// Confirmaciones
// -------------------------

func (c *Client) Pending(ctx context.Context, kind string) (Confirmation, error) {
	var out Confirmation
	err := c.c.DoJSON(ctx, http.MethodGet, "/confirmations/"+url.PathEscape(kind), nil, nil, &out)
	return out, err
}

func (c *Client) Confirm(ctx context.Context, kind string) (Confirmation, error) {
	var out Confirmation
	err := c.c.DoJSON(ctx, http.MethodPost, "/confirmations/"+url.PathEscape(kind)+"/confirm", nil, nil, &out)
	return out, err
}

func (c *Client) Cancel(ctx context.Context, kind string) (Confirmation, error) {
	var out Confirmation
	err := c.c.DoJSON(ctx, http.MethodPost, "/confirmations/"+url.PathEscape(kind)+"/cancel", nil, nil, &out)
	return out, err
}

// -------------------------
// Mascotas y perfil
// -------------------------

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	err := c.c.DoJSON(ctx, http.MethodGet, "/pets", nil, nil, &out)
	return out, err
}

func (c *Client) CreatePet(ctx context.Context, in SavePet) (Pet, error) {
	var out Pet
	err := c.c.DoJSON(ctx, http.MethodPost, "/pets", nil, in, &out)
	return out, err
}

func (c *Client) UpdatePet(ctx context.Context, id string, in SavePet) (Pet, error) {
	var out Pet
	err := c.c.DoJSON(ctx, http.MethodPut, "/pets/"+url.PathEscape(id), nil, in, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.c.DoJSON(ctx, http.MethodGet, "/profile", nil, nil, &out)
	return out, err
}

func (c *Client) ProfileDraft(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.c.DoJSON(ctx, http.MethodGet, "/profile/draft", nil, nil, &out)
	return out, err
}

func (c *Client) EditProfileDraft(ctx context.Context, patch ProfilePatch) (Profile, error) {
	var out Profile
	err := c.c.DoJSON(ctx, http.MethodPatch, "/profile/draft", nil, patch, &out)
	return out, err
}

func (c *Client) SubmitProfileDraft(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.c.DoJSON(ctx, http.MethodPost, "/profile/draft/submit", nil, nil, &out)
	return out, err
}

func (c *Client) DiscardProfileDraft(ctx context.Context) error {
	return c.c.DoJSON(ctx, http.MethodDelete, "/profile/draft", nil, nil, nil)
}

// ValidateAccount: form es sign-in, register o forgot-password.
func (c *Client) ValidateAccount(ctx context.Context, form, email, password, confirm string) (Validation, error) {
	in := map[string]string{"email": email, "password": password, "confirm_password": confirm}
	var out Validation
	err := c.c.DoJSON(ctx, http.MethodPost, "/account/validate/"+url.PathEscape(form), nil, in, &out)
	return out, err
}
