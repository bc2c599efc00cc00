package confirm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Action expone un gate de un tipo de acción (ej: "task-delete") a la API.
// Los candidatos se devuelven ya en su forma de respuesta JSON.
type Action interface {
	Kind() string
	Pending(ctx context.Context) (any, bool)
	Cancel(ctx context.Context) (any, bool)
	Confirm(ctx context.Context) (any, error)
}

// StatusMapper es opcional: traduce errores de dominio de Confirm a códigos HTTP.
type StatusMapper interface {
	StatusFor(err error) int
}

type confirmationResponse struct {
	Kind      string `json:"kind"`
	State     State  `json:"state"`
	Candidate any    `json:"candidate,omitempty"`
}

func RegisterRoutes(r chi.Router, actions ...Action) {
	byKind := make(map[string]Action, len(actions))
	for _, a := range actions {
		byKind[a.Kind()] = a
	}

	r.Route("/confirmations/{kind}", func(cr chi.Router) {
		cr.Get("/", pendingHandler(byKind))
		cr.Post("/confirm", confirmHandler(byKind))
		cr.Post("/cancel", cancelHandler(byKind))
	})
}

// pendingHandler godoc
// @Summary Ver acción pendiente de confirmación
// @Description Devuelve el estado del gate (idle/staged) y el candidato, si hay uno. Tipos: task-delete, report-mark-found.
// @Tags confirmations
// @Produce json
// @Param kind path string true "Tipo de acción" Enums(task-delete, report-mark-found)
// @Success 200 {object} confirmationResponse
// @Failure 404 {string} string "unknown action"
// @Router /confirmations/{kind} [get]
func pendingHandler(byKind map[string]Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := byKind[chi.URLParam(r, "kind")]
		if !ok {
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}

		c, staged := a.Pending(r.Context())
		writeJSON(w, http.StatusOK, toResponse(a.Kind(), c, staged))
	}
}

// confirmHandler godoc
// @Summary Confirmar acción pendiente
// @Description Aplica exactamente una mutación sobre el candidato y vuelve a idle. El candidato se descarta aunque la mutación falle.
// @Tags confirmations
// @Produce json
// @Param kind path string true "Tipo de acción" Enums(task-delete, report-mark-found)
// @Success 200 {object} confirmationResponse
// @Failure 404 {string} string "unknown action / not found"
// @Failure 409 {string} string "nothing staged"
// @Failure 500 {string} string "internal error"
// @Router /confirmations/{kind}/confirm [post]
func confirmHandler(byKind map[string]Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := byKind[chi.URLParam(r, "kind")]
		if !ok {
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}

		c, err := a.Confirm(r.Context())
		if err != nil {
			if errors.Is(err, ErrNothingStaged) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			status := http.StatusInternalServerError
			if m, ok := a.(StatusMapper); ok {
				status = m.StatusFor(err)
			}
			http.Error(w, err.Error(), status)
			return
		}

		resp := toResponse(a.Kind(), c, false)
		resp.Candidate = c
		writeJSON(w, http.StatusOK, resp)
	}
}

// cancelHandler godoc
// @Summary Cancelar acción pendiente
// @Description Descarta el candidato sin mutar nada. Es idempotente: sin candidato devuelve idle.
// @Tags confirmations
// @Produce json
// @Param kind path string true "Tipo de acción" Enums(task-delete, report-mark-found)
// @Success 200 {object} confirmationResponse
// @Failure 404 {string} string "unknown action"
// @Router /confirmations/{kind}/cancel [post]
func cancelHandler(byKind map[string]Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := byKind[chi.URLParam(r, "kind")]
		if !ok {
			http.Error(w, "unknown action", http.StatusNotFound)
			return
		}

		c, had := a.Cancel(r.Context())
		resp := toResponse(a.Kind(), nil, false)
		if had {
			resp.Candidate = c
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func toResponse(kind string, candidate any, staged bool) confirmationResponse {
	resp := confirmationResponse{Kind: kind, State: StateIdle}
	if staged {
		resp.State = StateStaged
		resp.Candidate = candidate
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
