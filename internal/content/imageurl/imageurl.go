// Package imageurl maps stored image references to renderable CDN URLs.
// Pure string construction: no caching, no validation beyond the reference
// shape — a well-formed URL may still 404 upstream if the asset is gone.
package imageurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// Builder composes asset URLs for one project/dataset.
type Builder struct {
	baseURL   string
	projectID string
	dataset   string
}

// New derives a builder from a configured content client.
func New(c *content.Client) Builder {
	return Builder{
		baseURL:   c.CDNBaseURL(),
		projectID: c.ProjectID(),
		dataset:   c.Dataset(),
	}
}

// Options parameterize crop/scale. Zero values are omitted and the CDN
// serves default dimensions.
type Options struct {
	Width  int
	Height int
	Fit    string // e.g. "crop", "max"
}

// IsRef reports whether ref has the platform's image reference shape. Covers
// stored by other backends (bucket object keys) fail this and resolve
// elsewhere.
func IsRef(ref string) bool {
	_, _, _, err := parseRef(ref)
	return err == nil
}

// URL renders a reference like "image-{assetID}-{W}x{H}-{ext}" at default
// dimensions.
func (b Builder) URL(ref string) (string, error) {
	return b.URLWith(ref, Options{})
}

// URLWith renders a reference with explicit options.
func (b Builder) URLWith(ref string, opts Options) (string, error) {
	id, dims, ext, err := parseRef(ref)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%s.%s", b.baseURL, b.projectID, b.dataset, id, dims, ext)

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("w", fmt.Sprint(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("h", fmt.Sprint(opts.Height))
	}
	if opts.Fit != "" {
		q.Set("fit", opts.Fit)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u, nil
}

// parseRef splits "image-{assetID}-{WxH}-{ext}". The asset ID itself never
// contains hyphens.
func parseRef(ref string) (id, dims, ext string, err error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", fmt.Errorf("imageurl: malformed image reference %q", ref)
	}
	if !strings.Contains(parts[2], "x") {
		return "", "", "", fmt.Errorf("imageurl: malformed dimensions in reference %q", ref)
	}
	return parts[1], parts[2], parts[3], nil
}
