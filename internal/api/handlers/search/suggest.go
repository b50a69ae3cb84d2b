// Package search serves the navigation search box: title suggestions for the
// typed prefix plus the caller's recent search terms.
package search

import (
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/api/session"
	searchsvc "github.com/AhmedAli0123/books-by-karl/internal/search"
)

type Handler struct {
	search *searchsvc.Service
}

func NewHandler(search *searchsvc.Service) *Handler {
	return &Handler{search: search}
}

// Suggest: GET /search/suggest?q=
// Up to three matching titles for the dropdown, alongside the client's recent
// terms. An empty q returns only the recent list.
func (h *Handler) Suggest() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		clientID := session.ClientID(w, r)

		suggestions, err := h.search.Suggest(r.Context(), q)
		if err != nil {
			httpx.ErrorJSON(w, http.StatusBadGateway, "failed to fetch suggestions")
			return
		}
		recent, _ := h.search.Recent(r.Context(), clientID)

		httpx.OK(w, map[string]any{
			"suggestions": suggestions,
			"recent":      recent,
		})
	})
}
