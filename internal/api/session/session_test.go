package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/api/session"
	"github.com/google/uuid"
)

func TestClientIDMintsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	id := session.ClientID(rec, httptest.NewRequest("GET", "/", nil))

	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("minted ID %q is not a UUID: %v", id, err)
	}

	res := rec.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 || cookies[0].Name != "bk_sid" || cookies[0].Value != id {
		t.Fatalf("cookies = %+v", cookies)
	}
	if !cookies[0].HttpOnly || cookies[0].SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie attributes: %+v", cookies[0])
	}
}

func TestClientIDReusesCookie(t *testing.T) {
	existing := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "bk_sid", Value: existing})

	rec := httptest.NewRecorder()
	if id := session.ClientID(rec, req); id != existing {
		t.Errorf("ClientID = %q, want %q", id, existing)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("valid cookie should not be re-set")
	}
}

func TestClientIDRejectsGarbageCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "bk_sid", Value: "not-a-uuid"})

	rec := httptest.NewRecorder()
	id := session.ClientID(rec, req)
	if id == "not-a-uuid" {
		t.Error("garbage cookie value must be replaced")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("replacement %q is not a UUID", id)
	}
}
