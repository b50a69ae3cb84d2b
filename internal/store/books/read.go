package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// GetBySlug fetches a single book document, or content.ErrNotFound.
func (s *Store) GetBySlug(ctx context.Context, slug string) (catalog.Book, error) {
	query := `*[_type == "book" && slug.current == $slug][0]`
	var out catalog.Book
	err := s.client.FetchInto(ctx, query, map[string]any{"slug": slug}, &out)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return catalog.Book{}, err
		}
		return catalog.Book{}, fmt.Errorf("get book by slug %q: %w", slug, err)
	}
	return out, nil
}

// GetByID fetches a single book document by its identifier.
func (s *Store) GetByID(ctx context.Context, id string) (catalog.Book, error) {
	query := `*[_type == "book" && _id == $id][0]`
	var out catalog.Book
	err := s.client.FetchInto(ctx, query, map[string]any{"id": id}, &out)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return catalog.Book{}, err
		}
		return catalog.Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return out, nil
}
