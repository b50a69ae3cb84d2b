package books

import (
	"github.com/AhmedAli0123/books-by-karl/internal/content/imageurl"
	"github.com/AhmedAli0123/books-by-karl/internal/search"
	"github.com/AhmedAli0123/books-by-karl/internal/storage"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

// Handler serves the public catalog pages and the admin CRUD surface. All
// collaborators are injected; the handler owns no connections of its own.
// covers resolves cover references that did not go through the content
// platform (bucket object keys); nil when the platform is the only backend.
type Handler struct {
	store  *storebooks.Store
	images imageurl.Builder
	covers storage.URLResolver
	search *search.Service
}

func NewHandler(store *storebooks.Store, images imageurl.Builder, covers storage.URLResolver, searchSvc *search.Service) *Handler {
	return &Handler{store: store, images: images, covers: covers, search: searchSvc}
}
