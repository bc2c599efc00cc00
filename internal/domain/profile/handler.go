package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))

		pr.Get("/draft", getDraftHandler(svc))
		pr.Patch("/draft", editDraftHandler(svc))
		pr.Delete("/draft", discardDraftHandler(svc))
		pr.Post("/draft/submit", submitDraftHandler(svc))
	})
}

// patchProfileRequest: campos ausentes no se tocan.
type patchProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"image_url"`
}

type profileResponse struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	ImageURL  string     `json:"image_url"`
	Initials  string     `json:"initials"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// getProfileHandler godoc
// @Summary Perfil visible
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "profile not found"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Displayed(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// getDraftHandler godoc
// @Summary Borrador del formulario de perfil
// @Description Si no hay cambios pendientes devuelve una copia del perfil visible.
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Router /profile/draft [get]
func getDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Draft(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// editDraftHandler godoc
// @Summary Editar borrador de perfil
// @Description Acumula cambios en el borrador. El perfil visible no cambia hasta el submit.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body patchProfileRequest true "Campos a cambiar"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json"
// @Router /profile/draft [patch]
func editDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.EditDraft(r.Context(), Patch{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			ImageURL: req.ImageURL,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// submitDraftHandler godoc
// @Summary Guardar perfil
// @Description Reemplaza el perfil visible por el borrador.
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 500 {string} string "internal error"
// @Router /profile/draft/submit [post]
func submitDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.SubmitDraft(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// discardDraftHandler godoc
// @Summary Descartar borrador de perfil
// @Tags profile
// @Success 204
// @Router /profile/draft [delete]
func discardDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.DiscardDraft()
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toProfileResponse(p Profile) profileResponse {
	resp := profileResponse{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		ImageURL: p.ImageURL,
		Initials: p.Initials(),
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
