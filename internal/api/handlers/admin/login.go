// Package admin carries the panel's authentication endpoint.
package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/auth"
)

type Handler struct {
	auth *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{auth: svc}
}

// Login: POST /admin/login
// Single-operator panel: one password, no usernames. A bad password gets the
// same 401 regardless of why the comparison failed.
func (h *Handler) Login() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if body.Password == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "password is required")
			return
		}

		token, err := h.auth.Login(body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				httpx.ErrorJSON(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			httpx.ErrorJSON(w, http.StatusInternalServerError, "login failed")
			return
		}

		httpx.OK(w, map[string]string{
			"token":     token,
			"tokenType": "Bearer",
		})
	})
}
