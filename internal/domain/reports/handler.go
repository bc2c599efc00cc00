package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/views"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reports", func(rr chi.Router) {
		rr.Post("/", createReportHandler(svc))
		rr.Get("/", listReportsHandler(svc))
		rr.Post("/images", uploadImageHandler(svc))

		rr.Get("/{reportID}", getReportHandler(svc))

		// Stagea missing -> found; se aplica con POST /confirmations/report-mark-found/confirm
		rr.Post("/{reportID}/mark-found", stageMarkFoundHandler(svc))
	})
}

// createReportRequest es el formulario de alerta. id, is_owner y status los asigna el servidor.
type createReportRequest struct {
	Title       string   `json:"title"`
	PetID       string   `json:"pet_id"`
	Description string   `json:"description"`
	Location    string   `json:"location"` // opcional, default configurado
	Images      []string `json:"images"`   // solo placeholders
	Tags        []string `json:"tags"`
}

// reportResponse representa una alerta devuelta por la API.
type reportResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	PetID       string     `json:"pet_id,omitempty"`
	PetName     string     `json:"pet_name"`
	PetType     string     `json:"pet_type"`
	PetAge      string     `json:"pet_age"`
	Status      Status     `json:"status" enums:"missing,found"`
	IsOwner     bool       `json:"is_owner"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FoundAt     *time.Time `json:"found_at,omitempty"`
}

type uploadImageRequest struct {
	Filename string `json:"filename"`
}

type uploadImageResponse struct {
	URL string `json:"url"`
}

// createReportHandler godoc
// @Summary Crear alerta de mascota perdida
// @Description Crea una alerta propia (is_owner=true, status=missing). title, pet_id y description son obligatorios. La mascota se copia como foto (nombre, tipo, edad). La fecha es la de hoy.
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body createReportRequest true "Datos de la alerta"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json / campos obligatorios / mascota inválida"
// @Failure 500 {string} string "internal error"
// @Router /reports [post]
func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rep, err := svc.Create(r.Context(), CreateInput{
			Title:       req.Title,
			PetID:       req.PetID,
			Description: req.Description,
			Location:    req.Location,
			Images:      req.Images,
			Tags:        req.Tags,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

// listReportsHandler godoc
// @Summary Listar alertas
// @Description Lista alertas propias (mine), de la comunidad (community) o todas. Acepta los mismos filtros que las tareas.
// @Tags reports
// @Produce json
// @Param scope query string false "mine | community | all (default all)"
// @Param q query string false "Texto a buscar en título/descripción"
// @Param pet query string false "Nombre exacto de la mascota"
// @Param tags query string false "Lista CSV de etiquetas"
// @Param from query string false "Fecha mínima YYYY-MM-DD"
// @Param to query string false "Fecha máxima YYYY-MM-DD"
// @Success 200 {array} reportResponse
// @Failure 400 {string} string "Parámetros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /reports [get]
func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := views.ParseCriteria(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		scope := Scope(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("scope"))))
		items, err := svc.List(r.Context(), scope, c)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// uploadImageHandler godoc
// @Summary Subir imagen (stub)
// @Description No almacena nada: devuelve la referencia placeholder para usar en images.
// @Tags reports
// @Accept json
// @Produce json
// @Param payload body uploadImageRequest false "Nombre del archivo elegido"
// @Success 200 {object} uploadImageResponse
// @Router /reports/images [post]
func uploadImageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadImageRequest
		// cuerpo opcional
		_ = json.NewDecoder(r.Body).Decode(&req)

		writeJSON(w, http.StatusOK, uploadImageResponse{URL: svc.UploadImage(req.Filename)})
	}
}

// getReportHandler godoc
// @Summary Obtener alerta
// @Tags reports
// @Produce json
// @Param reportID path string true "ID de la alerta"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "report not found"
// @Router /reports/{reportID} [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

// stageMarkFoundHandler godoc
// @Summary Solicitar marcar alerta como encontrada
// @Description Deja la alerta pendiente de confirmación. Solo alertas propias en estado missing.
// @Tags reports
// @Produce json
// @Param reportID path string true "ID de la alerta"
// @Success 202 {object} reportResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "report not found"
// @Failure 409 {string} string "invalid state"
// @Router /reports/{reportID}/mark-found [post]
func stageMarkFoundHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.StageMarkFound(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, toReportResponse(rep))
	}
}

// -------------------------
// Confirmación missing -> found
// -------------------------

// MarkFoundAction expone el gate en /confirmations/report-mark-found.
type MarkFoundAction struct {
	svc *Service
}

func NewMarkFoundAction(svc *Service) *MarkFoundAction {
	return &MarkFoundAction{svc: svc}
}

func (a *MarkFoundAction) Kind() string { return "report-mark-found" }

func (a *MarkFoundAction) Pending(context.Context) (any, bool) {
	rep, ok := a.svc.PendingMarkFound()
	return toReportResponse(rep), ok
}

func (a *MarkFoundAction) Cancel(context.Context) (any, bool) {
	rep, ok := a.svc.CancelMarkFound()
	return toReportResponse(rep), ok
}

func (a *MarkFoundAction) Confirm(ctx context.Context) (any, error) {
	rep, err := a.svc.ConfirmMarkFound(ctx)
	if err != nil {
		return nil, err
	}
	return toReportResponse(rep), nil
}

func (a *MarkFoundAction) StatusFor(err error) int {
	return statusFor(err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadState):
		return http.StatusConflict
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

func toReportResponse(r Report) reportResponse {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return reportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Date:        r.Date,
		Description: r.Description,
		Location:    r.Location,
		PetID:       r.Pet.ID,
		PetName:     r.Pet.Name,
		PetType:     r.Pet.Type,
		PetAge:      r.Pet.Age,
		Status:      r.Status,
		IsOwner:     r.IsOwner,
		Images:      images,
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		FoundAt:     r.FoundAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
