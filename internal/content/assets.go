package content

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// Asset is the stored handle for an uploaded binary: a stable reference ID
// plus a directly fetchable URL.
type Asset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// AssetClient uploads binaries to the store's asset endpoint.
type AssetClient struct {
	c *Client
}

// Upload streams a binary to the store. kind is the asset class ("image" is
// the only one this site uses); contentType may be empty, in which case the
// store sniffs it.
func (a *AssetClient) Upload(ctx context.Context, kind string, r io.Reader, filename, contentType string) (*Asset, error) {
	if kind == "" {
		return nil, fmt.Errorf("content: asset kind required")
	}
	u := fmt.Sprintf("%s/v%s/assets/%ss/%s", a.c.baseURL, a.c.cfg.APIVersion, kind, a.c.cfg.Dataset)
	if filename != "" {
		u += "?filename=" + url.QueryEscape(filename)
	}

	var out struct {
		Document Asset `json:"document"`
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := a.c.do(ctx, "POST", u, contentType, r, &out); err != nil {
		return nil, err
	}
	if out.Document.ID == "" {
		return nil, fmt.Errorf("content: upload returned no asset document")
	}
	return &out.Document, nil
}
