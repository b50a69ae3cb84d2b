// Package contact accepts the public contact/newsletter form and forwards it
// to the form relay.
package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/api/httpx"
	"github.com/AhmedAli0123/books-by-karl/internal/relay"
)

// Sender is satisfied by relay.Client; tests swap in a fake.
type Sender interface {
	Send(ctx context.Context, sub relay.Submission) error
}

type Handler struct {
	relay Sender
}

func NewHandler(r Sender) *Handler {
	return &Handler{relay: r}
}

// Submit: POST /contact
// The relay owns delivery; a rejection comes back as 502 and the caller keeps
// the form state for a manual retry.
func (h *Handler) Submit() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sub relay.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			httpx.ErrorJSON(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		sub.Name = strings.TrimSpace(sub.Name)
		sub.Email = strings.TrimSpace(sub.Email)
		sub.Country = strings.TrimSpace(sub.Country)
		sub.Message = strings.TrimSpace(sub.Message)

		if msg := validate(sub); msg != "" {
			httpx.ErrorJSON(w, http.StatusBadRequest, msg)
			return
		}

		if err := h.relay.Send(r.Context(), sub); err != nil {
			httpx.ErrorJSON(w, http.StatusBadGateway, "failed to deliver message")
			return
		}
		httpx.OKNoData(w)
	})
}

func validate(sub relay.Submission) string {
	switch {
	case sub.Name == "":
		return "name is required"
	case sub.Email == "":
		return "email is required"
	case sub.Country == "":
		return "country is required"
	case sub.Message == "":
		return "message is required"
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return "invalid email address"
	}
	return ""
}
