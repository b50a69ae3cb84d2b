package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adminh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/admin"
	assetsh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/assets"
	booksh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/books"
	contacth "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/contact"
	pagesh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/pages"
	searchh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/search"
	"github.com/AhmedAli0123/books-by-karl/internal/api/router"
	"github.com/AhmedAli0123/books-by-karl/internal/auth"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	"github.com/AhmedAli0123/books-by-karl/internal/content/imageurl"
	"github.com/AhmedAli0123/books-by-karl/internal/relay"
	"github.com/AhmedAli0123/books-by-karl/internal/search"
	"github.com/AhmedAli0123/books-by-karl/internal/storage"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
	storepages "github.com/AhmedAli0123/books-by-karl/internal/store/pages"
)

type noopSender struct{}

func (noopSender) Send(ctx context.Context, sub relay.Submission) error { return nil }

type noopUploader struct{}

func (noopUploader) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (storage.Upload, error) {
	return storage.Upload{ID: "id", URL: "url"}, nil
}

func newRouter(t *testing.T) (http.Handler, *auth.Service) {
	t.Helper()

	// Every store call answers an empty catalog.
	platform := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":[]}`)
	}))
	t.Cleanup(platform.Close)

	client, err := content.New(content.Config{Dataset: "production", BaseURL: platform.URL, ProjectID: "pj"})
	if err != nil {
		t.Fatal(err)
	}

	hash, err := auth.HashPassword("pw")
	if err != nil {
		t.Fatal(err)
	}
	authSvc, err := auth.NewService(auth.Config{
		AdminPasswordHash: hash,
		Secret:            []byte(strings.Repeat("k", 32)),
	})
	if err != nil {
		t.Fatal(err)
	}

	bookStore := storebooks.New(client)
	searchSvc := search.NewService(nil, bookStore)

	return router.Router(router.Deps{
		Auth:    authSvc,
		Books:   booksh.NewHandler(bookStore, imageurl.New(client), nil, searchSvc),
		Search:  searchh.NewHandler(searchSvc),
		Pages:   pagesh.NewHandler(storepages.New(client)),
		Contact: contacth.NewHandler(noopSender{}),
		Assets:  assetsh.NewHandler(noopUploader{}),
		Admin:   adminh.NewHandler(authSvc),
	}), authSvc
}

func TestPublicRoutes(t *testing.T) {
	r, _ := newRouter(t)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/books/", http.StatusOK},
		{"GET", "/books", http.StatusMovedPermanently},
		{"GET", "/search/suggest?q=x", http.StatusOK},
		{"GET", "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		if rec.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.target, rec.Code, tt.want)
		}
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, authSvc := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/books", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: status = %d", rec.Code)
	}

	token, err := authSvc.Login("pw")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("GET", "/admin/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated: status = %d, body = %s", rec.Code, rec.Body)
	}
}

func TestLoginRouteIsPublic(t *testing.T) {
	r, _ := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"password":"pw"}`)))
	if rec.Code != http.StatusOK {
		t.Errorf("login: status = %d, body = %s", rec.Code, rec.Body)
	}
}
