// Package contentassets stores uploads in the content platform's asset
// endpoint, so image references resolve through the platform CDN.
package contentassets

import (
	"context"
	"io"

	"github.com/AhmedAli0123/books-by-karl/internal/content"
	"github.com/AhmedAli0123/books-by-karl/internal/storage"
)

type Uploader struct {
	client *content.Client
}

func New(client *content.Client) *Uploader {
	return &Uploader{client: client}
}

func (u *Uploader) Upload(ctx context.Context, r io.Reader, filename, contentType string, _ int64) (storage.Upload, error) {
	asset, err := u.client.Assets().Upload(ctx, "image", r, filename, contentType)
	if err != nil {
		return storage.Upload{}, err
	}
	return storage.Upload{ID: asset.ID, URL: asset.URL}, nil
}
