// Package session pins an anonymous client ID cookie so recent-search
// history survives page loads without any account.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const cookieName = "bk_sid"

// ClientID returns the caller's session ID, minting and setting the cookie
// when absent.
func ClientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
