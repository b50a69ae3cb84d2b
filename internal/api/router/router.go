package router

import (
	"net/http"

	adminh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/admin"
	assetsh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/assets"
	booksh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/books"
	contacth "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/contact"
	pagesh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/pages"
	searchh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/search"
	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/api/middlewares"
	"github.com/AhmedAli0123/books-by-karl/internal/auth"
)

// Deps carries the constructed handlers; wiring happens in cmd/api.
type Deps struct {
	Auth    *auth.Service
	Books   *booksh.Handler
	Search  *searchh.Handler
	Pages   *pagesh.Handler
	Contact *contacth.Handler
	Assets  *assetsh.Handler
	Admin   *adminh.Handler
}

func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.OKNoData(w)
	})

	// Keep legacy /books -> /books/
	mux.HandleFunc("GET /books", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/books/", http.StatusMovedPermanently)
	})

	// Public catalog (1.22 method patterns)
	mux.Handle("GET /books/", d.Books.PublicList())
	mux.Handle("GET /books/{slug}", d.Books.PublicGet())

	// Search
	mux.Handle("GET /search/suggest", d.Search.Suggest())

	// Marketing pages
	mux.Handle("GET /pages/{slug}", d.Pages.Get())

	// Contact form
	mux.Handle("POST /contact", d.Contact.Submit())

	// Admin panel
	mux.Handle("POST /admin/login", d.Admin.Login())
	mux.Handle("GET /admin/books", admin(d, d.Books.AdminList()))
	mux.Handle("POST /admin/books", admin(d, d.Books.AdminCreate()))
	mux.Handle("GET /admin/books/{id}", admin(d, d.Books.AdminGet()))
	mux.Handle("PUT /admin/books/{id}", admin(d, d.Books.AdminUpdate()))
	mux.Handle("DELETE /admin/books/{id}", admin(d, d.Books.AdminDelete()))
	mux.Handle("POST /admin/upload", admin(d, d.Assets.Upload()))

	return mux
}

func admin(d Deps, h http.Handler) http.Handler {
	return middlewares.RequireAdmin(d.Auth, h)
}
