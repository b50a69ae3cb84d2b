// Package relay forwards contact/newsletter submissions to the external
// form-relay endpoint. The relay owns delivery; we only report whether it
// accepted the submission.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	endpoint  string
	accessKey string
	http      *http.Client
}

func New(endpoint, accessKey string) *Client {
	return &Client{
		endpoint:  endpoint,
		accessKey: accessKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Submission is one contact/newsletter form post.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Message string `json:"message"`
}

type relayRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	Message   string `json:"message"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send posts the submission. Anything other than {success:true} is an error;
// the caller surfaces it and keeps the form state for manual retry.
func (c *Client) Send(ctx context.Context, sub Submission) error {
	payload, err := json.Marshal(relayRequest{
		AccessKey: c.accessKey,
		Name:      sub.Name,
		Email:     sub.Email,
		Country:   sub.Country,
		Message:   sub.Message,
	})
	if err != nil {
		return fmt.Errorf("relay: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	defer resp.Body.Close()

	var out relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("relay: decode response: %w", err)
	}
	if !out.Success {
		if out.Message != "" {
			return fmt.Errorf("relay rejected submission: %s", out.Message)
		}
		return fmt.Errorf("relay rejected submission (status %d)", resp.StatusCode)
	}
	return nil
}
