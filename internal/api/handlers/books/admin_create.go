package books

import (
	"encoding/json"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// AdminCreate: POST /admin/books
// Body is the flattened draft the form edits; the store derives the slug,
// wraps plain text back into rich-text blocks, and assigns the ID.
func (h *Handler) AdminCreate() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft storebooks.BookDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		created, err := h.store.Create(r.Context(), draft)
		if err != nil {
			status, msg := mutationError(err)
			httpx.ErrorJSON(w, status, msg)
			return
		}

		if h.search != nil {
			h.search.Invalidate(r.Context())
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"status": "success",
			"data":   h.toAdminBook(r.Context(), created),
		})
	})
}
