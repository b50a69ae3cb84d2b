package search_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	searchh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/search"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	"github.com/AhmedAli0123/books-by-karl/internal/search"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

func newHandler(t *testing.T, titlesJSON string) *searchh.Handler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":`+titlesJSON+`}`)
	}))
	t.Cleanup(srv.Close)

	client, err := content.New(content.Config{Dataset: "production", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	return searchh.NewHandler(search.NewService(nil, storebooks.New(client)))
}

func TestSuggest(t *testing.T) {
	h := newHandler(t, `["Living the Dreams","Dream Harder","Quiet Rivers","The Dreamer's Almanac"]`)

	rec := httptest.NewRecorder()
	h.Suggest().ServeHTTP(rec, httptest.NewRequest("GET", "/search/suggest?q=dream", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var env struct {
		Data struct {
			Suggestions []string `json:"suggestions"`
			Recent      []string `json:"recent"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data.Suggestions) != 3 {
		t.Errorf("suggestions = %v, want 3 (capped)", env.Data.Suggestions)
	}

	// First hit mints the anonymous session cookie.
	if cookies := rec.Result().Cookies(); len(cookies) != 1 || cookies[0].Name != "bk_sid" {
		t.Errorf("cookies = %+v", cookies)
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	h := newHandler(t, `["Living the Dreams"]`)

	rec := httptest.NewRecorder()
	h.Suggest().ServeHTTP(rec, httptest.NewRequest("GET", "/search/suggest", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env struct {
		Data struct {
			Suggestions []string `json:"suggestions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Data.Suggestions) != 0 {
		t.Errorf("empty query should suggest nothing, got %v", env.Data.Suggestions)
	}
}
