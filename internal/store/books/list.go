package books

import (
	"context"
	"fmt"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// List fetches book documents ordered by publish date descending. When q is
// set the store matches it as a substring against title, author and
// identifier; everything finer-grained (the public search box, sorting
// modes) happens in memory on the fetched set.
func (s *Store) List(ctx context.Context, q ListQuery) ([]catalog.Book, error) {
	query := `*[_type == "book"] | order(publishedDate desc)`
	var params map[string]any
	if q.Q != "" {
		query = `*[_type == "book" && (name match $q || author match $q || _id == $term)] | order(publishedDate desc)`
		params = map[string]any{
			"q":    "*" + q.Q + "*",
			"term": q.Q,
		}
	}

	var out []catalog.Book
	if err := s.client.FetchInto(ctx, query, params, &out); err != nil {
		if err == content.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list books: %w", err)
	}
	return out, nil
}
