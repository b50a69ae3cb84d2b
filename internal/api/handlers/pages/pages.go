// Package pages serves the marketing page documents.
package pages

import (
	"errors"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	storepages "github.com/AhmedAli0123/books-by-karl/internal/store/pages"
)

type Handler struct {
	store *storepages.Store
}

func NewHandler(store *storepages.Store) *Handler {
	return &Handler{store: store}
}

// Get: GET /pages/{slug} — e.g. the-author, faq.
func (h *Handler) Get() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		page, err := h.store.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				httpx.ErrorJSON(w, http.StatusNotFound, "page not found")
				return
			}
			httpx.ErrorJSON(w, http.StatusBadGateway, "failed to fetch page")
			return
		}
		httpx.OK(w, page)
	})
}
