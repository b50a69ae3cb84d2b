package books

import (
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
)

// AdminDelete: DELETE /admin/books/{id}
// Irreversible. The panel confirms interactively before calling this; a
// repeat delete of the same ID answers 404.
func (h *Handler) AdminDelete() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, "missing document id")
			return
		}

		if err := h.store.Delete(r.Context(), id); err != nil {
			status, msg := mutationError(err)
			httpx.ErrorJSON(w, status, msg)
			return
		}

		if h.search != nil {
			h.search.Invalidate(r.Context())
		}
		httpx.OKNoData(w)
	})
}
