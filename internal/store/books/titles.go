package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// Titles returns every book title, feeding the suggestion cache.
func (s *Store) Titles(ctx context.Context) ([]string, error) {
	var out []string
	err := s.client.FetchInto(ctx, `*[_type == "book"].name`, nil, &out)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list titles: %w", err)
	}
	return out, nil
}
