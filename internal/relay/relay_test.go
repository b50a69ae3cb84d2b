package relay_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedAli0123/books-by-karl/internal/relay"
)

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"success":true,"message":"ok"}`)
	}))
	defer srv.Close()

	c := relay.New(srv.URL, "key-123")
	err := c.Send(context.Background(), relay.Submission{
		Name:    "Jo",
		Email:   "jo@example.com",
		Country: "NL",
		Message: "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "key-123", got["access_key"])
	assert.Equal(t, "Jo", got["name"])
	assert.Equal(t, "jo@example.com", got["email"])
	assert.Equal(t, "NL", got["country"])
	assert.Equal(t, "Hello", got["message"])
}

func TestSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"success":false,"message":"invalid access key"}`)
	}))
	defer srv.Close()

	err := relay.New(srv.URL, "bad").Send(context.Background(), relay.Submission{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access key")
}

func TestSendNonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream gateway error")
	}))
	defer srv.Close()

	err := relay.New(srv.URL, "key").Send(context.Background(), relay.Submission{Name: "x"})
	require.Error(t, err)
}
