package books

import (
	"net/http"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/api/apperr"
	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// AdminList: GET /admin/books?query= — rows for the panel, newest first,
// optionally narrowed store-side by title/author/ID substring.
func (h *Handler) AdminList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("query"))

		list, err := h.store.List(r.Context(), storebooks.ListQuery{Q: q})
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadGateway, "Store error", "Failed to list books")
			return
		}

		rows := make([]AdminBook, 0, len(list))
		for _, b := range list {
			rows = append(rows, h.toAdminBook(r.Context(), b))
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"count":  len(rows),
			"data":   rows,
		})
	})
}
