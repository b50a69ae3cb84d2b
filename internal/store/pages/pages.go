// Package pages fetches the marketing page documents (author bio, FAQ) from
// the content store.
package pages

import (
	"context"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

type Page struct {
	ID    string               `json:"_id"`
	Title string               `json:"title"`
	Slug  catalog.Slug         `json:"slug"`
	Body  []portabletext.Block `json:"body"`
}

// BodyText flattens the page body for plain-text consumers.
func (p Page) BodyText() string {
	return portabletext.PlainText(p.Body)
}

type Store struct {
	client *content.Client
}

func New(client *content.Client) *Store {
	return &Store{client: client}
}

const pageBySlugQuery = `*[_type == "page" && slug.current == $slug][0]`

// GetBySlug fetches one page document. content.ErrNotFound when no page has
// the slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (Page, error) {
	var p Page
	err := s.client.FetchInto(ctx, pageBySlugQuery, map[string]any{"slug": slug}, &p)
	return p, err
}
