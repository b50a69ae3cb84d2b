package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Fetch evaluates a declarative filter/projection/order query remotely and
// returns the raw result (a document or a document array, depending on the
// query). Params are bound as $name placeholders, JSON-encoded per the query
// API's convention.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	v := url.Values{}
	v.Set("query", query)
	for name, val := range params {
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("content: encode param %s: %w", name, err)
		}
		v.Set("$"+name, string(raw))
	}

	var out struct {
		Result json.RawMessage `json:"result"`
	}
	u := c.endpoint("data/query") + "?" + v.Encode()
	if err := c.do(ctx, "GET", u, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// FetchInto decodes the query result straight into dst.
func (c *Client) FetchInto(ctx context.Context, query string, params map[string]any, dst any) error {
	raw, err := c.Fetch(ctx, query, params)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("content: decode query result: %w", err)
	}
	return nil
}
