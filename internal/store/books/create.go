package books

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
)

// Create validates the draft, derives the slug when no override was given,
// wraps the plain-text fields into single-block rich text, and stores the
// new document. The store assigns the ID and revision.
func (s *Store) Create(ctx context.Context, draft BookDraft) (catalog.Book, error) {
	sanitizeDraft(&draft)
	if err := validateDraft(draft); err != nil {
		return catalog.Book{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	doc, err := buildDocument(draft, nil)
	if err != nil {
		return catalog.Book{}, err
	}

	raw, err := s.client.Create(ctx, doc)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("create book: %w", err)
	}

	var created catalog.Book
	if err := json.Unmarshal(raw, &created); err != nil {
		return catalog.Book{}, fmt.Errorf("create book: decode result: %w", err)
	}
	return created, nil
}
