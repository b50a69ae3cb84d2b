package books

import (
	"errors"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/apperr"
	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// PublicGet: GET /books/{slug}
func (h *Handler) PublicGet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug == "" {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "Bad request", "Missing book slug")
			return
		}

		book, err := h.store.GetBySlug(r.Context(), slug)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				apperr.WriteStatus(w, r, http.StatusNotFound, "Not found", "Book not found")
				return
			}
			apperr.WriteStatus(w, r, http.StatusBadGateway, "Store error", "Failed to fetch book")
			return
		}

		httpx.OK(w, h.toDetail(r.Context(), book))
	})
}
