package books

import (
	"net/http"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/api/apperr"
	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/api/session"
	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
)

// PublicList: GET /books/?search=&sort=
// Fetches the whole catalog once, then filters and sorts in memory. The
// catalog is a single author's shelf; no pagination.
func (h *Handler) PublicList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		term := strings.TrimSpace(r.URL.Query().Get("search"))
		mode := catalog.ParseSortMode(r.URL.Query().Get("sort"))

		all, err := h.store.List(r.Context(), storeListAll)
		if err != nil {
			apperr.WriteStatus(w, r, http.StatusBadGateway, "Store error", "Failed to fetch books")
			return
		}

		// Arriving with ?search= is a submitted search; remember it.
		if term != "" && h.search != nil {
			h.search.Record(r.Context(), session.ClientID(w, r), term)
		}

		filtered := catalog.Filter(all, term)
		catalog.Sort(filtered, mode)

		items := make([]ListItem, 0, len(filtered))
		for _, b := range filtered {
			items = append(items, h.toListItem(r.Context(), b))
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "success",
			"count":  len(items),
			"sort":   mode,
			"search": term,
			"data":   items,
		})
	})
}
