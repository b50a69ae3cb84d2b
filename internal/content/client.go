// Package content is a thin client for the hosted document store that holds
// the site's catalog. The store is consumed as an opaque document platform:
// a declarative query endpoint, a mutation endpoint (create / patch-set /
// delete), and a binary asset-upload endpoint. The client is constructed
// once at startup and handed to whichever component needs store access;
// there is deliberately no package-level singleton.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string // e.g. "2024-01-01"
	Token      string

	// BaseURL overrides the derived API host. Tests point this at a local
	// httptest server.
	BaseURL string
	// CDNBaseURL overrides the asset CDN host used by the image URL builder.
	CDNBaseURL string

	HTTPClient *http.Client
}

type Client struct {
	cfg     Config
	http    *http.Client
	baseURL string
}

func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("content: project ID or base URL required")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("content: dataset required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.content.example.com", cfg.ProjectID)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg, http: hc, baseURL: base}, nil
}

func (c *Client) Dataset() string   { return c.cfg.Dataset }
func (c *Client) ProjectID() string { return c.cfg.ProjectID }

// CDNBaseURL is the host the image URL builder composes asset URLs against.
func (c *Client) CDNBaseURL() string {
	if c.cfg.CDNBaseURL != "" {
		return c.cfg.CDNBaseURL
	}
	return "https://cdn.content.example.com"
}

// Assets exposes the binary upload surface.
func (c *Client) Assets() *AssetClient { return &AssetClient{c: c} }

func (c *Client) endpoint(kind string) string {
	return fmt.Sprintf("%s/v%s/%s/%s", c.baseURL, c.cfg.APIVersion, kind, c.cfg.Dataset)
}

// do issues one API request and decodes the JSON response into out. Non-2xx
// responses become typed errors; callers never retry.
func (c *Client) do(ctx context.Context, method, url string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("content: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("content: decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("content: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, url, "application/json", body, out)
}
