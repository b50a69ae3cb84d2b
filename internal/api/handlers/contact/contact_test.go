package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/api/handlers/contact"
	"github.com/AhmedAli0123/books-by-karl/internal/relay"
)

type fakeSender struct {
	sent []relay.Submission
	err  error
}

func (f *fakeSender) Send(ctx context.Context, sub relay.Submission) error {
	f.sent = append(f.sent, sub)
	return f.err
}

func post(t *testing.T, h *contact.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Submit().ServeHTTP(rec, httptest.NewRequest("POST", "/contact", strings.NewReader(body)))
	return rec
}

func TestSubmit(t *testing.T) {
	sender := &fakeSender{}
	h := contact.NewHandler(sender)

	rec := post(t, h, `{"name":" Jo ","email":"jo@example.com","country":"NL","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d submissions", len(sender.sent))
	}
	if sender.sent[0].Name != "Jo" {
		t.Errorf("name not trimmed: %q", sender.sent[0].Name)
	}
}

func TestSubmitValidation(t *testing.T) {
	sender := &fakeSender{}
	h := contact.NewHandler(sender)

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing name", `{"email":"a@b.com","country":"NL","message":"x"}`},
		{"missing email", `{"name":"Jo","country":"NL","message":"x"}`},
		{"missing country", `{"name":"Jo","email":"a@b.com","message":"x"}`},
		{"missing message", `{"name":"Jo","email":"a@b.com","country":"NL"}`},
		{"bad email", `{"name":"Jo","email":"not-an-email","country":"NL","message":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := post(t, h, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, body = %s", rec.Code, rec.Body)
			}
		})
	}
	if len(sender.sent) != 0 {
		t.Errorf("invalid submissions must not reach the relay: %+v", sender.sent)
	}
}

func TestSubmitRelayFailure(t *testing.T) {
	h := contact.NewHandler(&fakeSender{err: errors.New("relay down")})

	rec := post(t, h, `{"name":"Jo","email":"jo@example.com","country":"NL","message":"Hello"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body)
	}
}
