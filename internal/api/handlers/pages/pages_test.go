package pages_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pagesh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/pages"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	storepages "github.com/AhmedAli0123/books-by-karl/internal/store/pages"
)

func newMux(t *testing.T, queryResult string) *http.ServeMux {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":`+queryResult+`}`)
	}))
	t.Cleanup(srv.Close)

	client, err := content.New(content.Config{Dataset: "production", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /pages/{slug}", pagesh.NewHandler(storepages.New(client)).Get())
	return mux
}

func TestGetPage(t *testing.T) {
	mux := newMux(t, `{"_id":"p1","title":"The Author","slug":{"current":"the-author"},"body":[{"_type":"block","style":"normal","markDefs":[],"children":[{"_type":"span","text":"Karl writes.","marks":[]}]}]}`)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/pages/the-author", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var env struct {
		Data storepages.Page `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Data.Title != "The Author" || env.Data.BodyText() != "Karl writes." {
		t.Errorf("page = %+v", env.Data)
	}
}

func TestGetPageNotFound(t *testing.T) {
	mux := newMux(t, `null`)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/pages/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "page not found") {
		t.Errorf("body = %s", rec.Body)
	}
}
