package books

import (
	"errors"
	"net/http"

	"github.com/AhmedAli0123/books-by-karl/internal/content"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// storeListAll: the unfiltered fetch used by the public routes; narrowing
// happens client-side on the fetched set.
var storeListAll = storebooks.ListQuery{}

// mutationError maps store failures to a status and a user-facing message.
// Transport details stay in the logs, not the response.
func mutationError(err error) (int, string) {
	switch {
	case errors.Is(err, storebooks.ErrInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, storebooks.ErrMissingID):
		return http.StatusBadRequest, "missing document id"
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound, "book not found"
	case errors.Is(err, content.ErrRevisionMismatch):
		return http.StatusConflict, "book was modified by another editor; reload and retry"
	default:
		return http.StatusBadGateway, "failed to save book"
	}
}
