package books

import (
	"encoding/json"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// AdminUpdate: PUT /admin/books/{id}
// Whole-document replace. The optional X-Revision header (or "rev" query
// param) carries the revision the editor loaded; a stale revision gets 409
// instead of silently overwriting the other editor's work.
func (h *Handler) AdminUpdate() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "missing document id")
			return
		}

		rev := r.Header.Get("X-Revision")
		if rev == "" {
			rev = r.URL.Query().Get("rev")
		}

		var draft storebooks.BookDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		updated, err := h.store.Update(r.Context(), id, rev, draft)
		if err != nil {
			status, msg := mutationError(err)
			httpx.ErrorJSON(w, status, msg)
			return
		}

		if h.search != nil {
			h.search.Invalidate(r.Context())
		}
		httpx.OK(w, h.toAdminBook(r.Context(), updated))
	})
}
