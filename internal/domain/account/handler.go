package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	r.Post("/account/validate/{form}", validateHandler())
}

type validateRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validateResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []fieldErrorResponse `json:"errors"`
}

// validateHandler godoc
// @Summary Validar formulario de acceso
// @Description Aplica las reglas de sign-in, register o forgot-password. No autentica ni crea usuarios.
// @Tags account
// @Accept json
// @Produce json
// @Param form path string true "Formulario" Enums(sign-in, register, forgot-password)
// @Param payload body validateRequest true "Campos del formulario"
// @Success 200 {object} validateResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "unknown form"
// @Router /account/validate/{form} [post]
func validateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := Validate(Form(chi.URLParam(r, "form")), Credentials{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			if errors.Is(err, ErrUnknownForm) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := validateResponse{Valid: res.Valid, Errors: make([]fieldErrorResponse, 0, len(res.Errors))}
		for _, e := range res.Errors {
			out.Errors = append(out.Errors, fieldErrorResponse{Field: e.Field, Message: e.Message})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
