// Package storage abstracts where uploaded cover images land. The default
// backend is the content platform's own asset endpoint; an S3-compatible
// bucket (R2) is available as an alternative for deployments that keep
// binaries out of the content store.
package storage

import (
	"context"
	"io"
)

// Upload is the stable handle returned by every backend: a reference ID
// usable in stored documents plus a directly fetchable URL.
type Upload struct {
	ID  string
	URL string
}

// Uploader stores one binary and returns its handle.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (Upload, error)
}

// URLResolver turns a stored upload ID back into a fetchable URL at read
// time. Backends whose IDs resolve through a CDN (the content platform) do
// not implement this; the bucket backend does, because its presigned URLs
// expire and must be re-minted per read.
type URLResolver interface {
	ResolveURL(ctx context.Context, id string) (string, error)
}
