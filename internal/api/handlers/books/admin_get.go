package books

import (
	"errors"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// AdminGet: GET /admin/books/{id} — the stored document plus the flattened
// draft the edit form is prefilled with, and the revision to echo back on
// save.
func (h *Handler) AdminGet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "missing document id")
			return
		}

		book, err := h.store.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				httpx.ErrorJSON(w, http.StatusNotFound, "book not found")
				return
			}
			httpx.ErrorJSON(w, http.StatusBadGateway, "failed to fetch book")
			return
		}

		httpx.OK(w, map[string]any{
			"document": h.toAdminBook(r.Context(), book),
			"draft":    storebooks.DraftFromBook(book),
			"revision": book.Rev,
		})
	})
}
