package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/views"
)

// PetDirectory da los nombres de mascotas para el selector del formulario.
// Evita importar el paquete pets.
type PetDirectory interface {
	PetNames(ctx context.Context) ([]string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, pets PetDirectory) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc))
		tr.Get("/", listTasksHandler(svc))
		tr.Get("/options", taskOptionsHandler(pets))

		tr.Get("/{taskID}", getTaskHandler(svc))
		tr.Put("/{taskID}", updateTaskHandler(svc))
		tr.Post("/{taskID}/toggle", toggleTaskHandler(svc))

		// Stagea la eliminación; se aplica con POST /confirmations/task-delete/confirm
		tr.Post("/{taskID}/delete", stageDeleteHandler(svc))
	})

	r.Get("/history", historyHandler(svc))

	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/", calendarHandler(svc))
		cr.Get("/days/{date}/tasks", dayTasksHandler(svc))
	})
}

// saveTaskRequest es el payload del formulario de tareas (alta y edición).
type saveTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // texto libre, opcional
	Pet         string   `json:"pet"`
	Tags        []string `json:"tags"`
}

// taskResponse representa una tarea devuelta por la API.
type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Pet         string    `json:"pet"`
	Tags        []string  `json:"tags"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type bucketsResponse struct {
	Today    []taskResponse `json:"today"`
	Tomorrow []taskResponse `json:"tomorrow"`
	Upcoming []taskResponse `json:"upcoming"`
}

type historyEntryResponse struct {
	taskResponse
	Status Status `json:"status" enums:"Done,Missed,Upcoming"`
}

type optionsResponse struct {
	Pets []string `json:"pets"`
	Tags []string `json:"tags"`
}

type calendarDayResponse struct {
	Date       string `json:"date"`
	InMonth    bool   `json:"in_month"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	HasTasks   bool   `json:"has_tasks"`
}

type calendarResponse struct {
	Month     string                `json:"month"`
	WeekStart string                `json:"week_start"`
	Selected  string                `json:"selected"`
	Days      []calendarDayResponse `json:"days"`
}

// createTaskHandler godoc
// @Summary Crear tarea
// @Description Crea una tarea de cuidado. title, pet y date son obligatorios. Las etiquetas repetidas se descartan. El id y completed=false los asigna el servidor.
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body saveTaskRequest true "Datos de la tarea; date en formato YYYY-MM-DD"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Failure 500 {string} string "internal error"
// @Router /tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeSaveRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTaskResponse(t))
	}
}

// listTasksHandler godoc
// @Summary Listar tareas por día
// @Description Devuelve las tareas filtradas agrupadas en today, tomorrow y upcoming. Las tareas de días pasados no aparecen (ver /history).
// @Tags tasks
// @Produce json
// @Param q query string false "Texto a buscar en título/descripción (sin distinguir mayúsculas)"
// @Param pet query string false "Nombre exacto de la mascota"
// @Param tags query string false "Lista CSV de etiquetas (alcanza con una)"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Success 200 {object} bucketsResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := views.ParseCriteria(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b, err := svc.Buckets(r.Context(), c)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, bucketsResponse{
			Today:    toTaskResponses(b.Today),
			Tomorrow: toTaskResponses(b.Tomorrow),
			Upcoming: toTaskResponses(b.Upcoming),
		})
	}
}

// taskOptionsHandler godoc
// @Summary Opciones del formulario de tareas
// @Description Mascotas disponibles y etiquetas sugeridas.
// @Tags tasks
// @Produce json
// @Success 200 {object} optionsResponse
// @Failure 500 {string} string "internal error"
// @Router /tasks/options [get]
func taskOptionsHandler(pets PetDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := pets.PetNames(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, optionsResponse{
			Pets: names,
			Tags: append([]string(nil), SuggestedTags...),
		})
	}
}

// getTaskHandler godoc
// @Summary Obtener tarea
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "task not found"
// @Router /tasks/{taskID} [get]
func getTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

// updateTaskHandler godoc
// @Summary Editar tarea
// @Description Reenvío del formulario de edición. Conserva id y completed.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Param payload body saveTaskRequest true "Datos de la tarea"
// @Success 200 {object} taskResponse
// @Failure 400 {string} string "invalid json / campos obligatorios"
// @Failure 404 {string} string "task not found"
// @Router /tasks/{taskID} [put]
func updateTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decodeSaveRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "taskID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

// toggleTaskHandler godoc
// @Summary Marcar/desmarcar tarea como completada
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "task not found"
// @Router /tasks/{taskID}/toggle [post]
func toggleTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.ToggleCompleted(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponse(t))
	}
}

// stageDeleteHandler godoc
// @Summary Solicitar eliminación de tarea
// @Description Deja la tarea pendiente de confirmación (reemplaza a cualquier otra pendiente). No borra nada hasta POST /confirmations/task-delete/confirm.
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 202 {object} taskResponse
// @Failure 404 {string} string "task not found"
// @Router /tasks/{taskID}/delete [post]
func stageDeleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.StageDelete(r.Context(), chi.URLParam(r, "taskID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, toTaskResponse(t))
	}
}

// historyHandler godoc
// @Summary Historial de tareas
// @Description Tareas filtradas ordenadas por fecha descendente, con estado Done / Missed / Upcoming.
// @Tags history
// @Produce json
// @Param q query string false "Texto a buscar en título/descripción"
// @Param pet query string false "Nombre exacto de la mascota"
// @Param tags query string false "Lista CSV de etiquetas"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Success 200 {array} historyEntryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /history [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := views.ParseCriteria(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		entries, err := svc.History(r.Context(), c)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]historyEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, historyEntryResponse{
				taskResponse: toTaskResponse(e.Task),
				Status:       e.Status,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// calendarHandler godoc
// @Summary Grilla mensual
// @Description Semanas completas del mes (con días de relleno del mes anterior/siguiente) y si cada día tiene tareas.
// @Tags calendar
// @Produce json
// @Param month query string false "Mes YYYY-MM. Por defecto el mes actual"
// @Param selected query string false "Día seleccionado YYYY-MM-DD. Por defecto hoy"
// @Success 200 {object} calendarResponse
// @Failure 400 {string} string "month/selected inválidos"
// @Failure 500 {string} string "internal error"
// @Router /calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := svc.Today()
		if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
			m, err := dates.ParseMonth(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			month = m
		}

		var selected time.Time
		if v := strings.TrimSpace(r.URL.Query().Get("selected")); v != "" {
			d, err := dates.ParseISO(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			selected = d
		}

		cal, err := svc.Calendar(r.Context(), month, selected)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		days := make([]calendarDayResponse, 0, len(cal.Days))
		for _, d := range cal.Days {
			days = append(days, calendarDayResponse{
				Date:       dates.FormatISO(d.Date),
				InMonth:    d.InMonth,
				IsToday:    d.IsToday,
				IsSelected: d.IsSelected,
				HasTasks:   d.HasTasks,
			})
		}

		writeJSON(w, http.StatusOK, calendarResponse{
			Month:     cal.Month.Format(dates.Month),
			WeekStart: strings.ToLower(cal.WeekStart.String()),
			Selected:  dates.FormatISO(cal.Selected),
			Days:      days,
		})
	}
}

// dayTasksHandler godoc
// @Summary Tareas de un día
// @Tags calendar
// @Produce json
// @Param date path string true "Día YYYY-MM-DD"
// @Success 200 {array} taskResponse
// @Failure 400 {string} string "date inválida"
// @Failure 500 {string} string "internal error"
// @Router /calendar/days/{date}/tasks [get]
func dayTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := dates.ParseISO(chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.OnDay(r.Context(), day)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toTaskResponses(items))
	}
}

// -------------------------
// Confirmación de eliminación
// -------------------------

// DeleteAction expone el gate de eliminación de tareas en /confirmations/task-delete.
type DeleteAction struct {
	svc *Service
}

func NewDeleteAction(svc *Service) *DeleteAction {
	return &DeleteAction{svc: svc}
}

func (a *DeleteAction) Kind() string { return "task-delete" }

func (a *DeleteAction) Pending(context.Context) (any, bool) {
	t, ok := a.svc.PendingDelete()
	return toTaskResponse(t), ok
}

func (a *DeleteAction) Cancel(context.Context) (any, bool) {
	t, ok := a.svc.CancelDelete()
	return toTaskResponse(t), ok
}

func (a *DeleteAction) Confirm(ctx context.Context) (any, error) {
	t, err := a.svc.ConfirmDelete(ctx)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(t), nil
}

func (a *DeleteAction) StatusFor(err error) int {
	return statusFor(err)
}

// -------------------------
// helpers
// -------------------------

func decodeSaveRequest(r *http.Request) (SaveInput, error) {
	var req saveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return SaveInput{}, errors.New("invalid json")
	}

	var d time.Time
	if strings.TrimSpace(req.Date) != "" {
		t, err := dates.ParseISO(req.Date)
		if err != nil {
			return SaveInput{}, err
		}
		d = t
	}

	return SaveInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        d,
		Time:        req.Time,
		Pet:         req.Pet,
		Tags:        req.Tags,
	}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func toTaskResponse(t Task) taskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        dates.FormatISO(t.Date),
		Time:        t.Time,
		Pet:         t.Pet,
		Tags:        tags,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskResponses(items []Task) []taskResponse {
	out := make([]taskResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTaskResponse(t))
	}
	return out
}

// writeJSON está duplicado a propósito en cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
