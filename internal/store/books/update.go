package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
)

// ErrMissingID: an edit submission arrived without a loaded document ID.
// Fatal to that submission only; the router should not have allowed it.
var ErrMissingID = errors.New("update requires a document id")

// Update replaces the whole remote document via patch-set. rev, when set,
// guards the commit against concurrent editors (the stored revision must
// still match or the commit fails with content.ErrRevisionMismatch).
//
// Rich-text fields whose flattened text is unchanged keep their original
// block structure; only fields the editor actually rewrote collapse to a
// single plain block.
func (s *Store) Update(ctx context.Context, id, rev string, draft BookDraft) (catalog.Book, error) {
	if id == "" {
		return catalog.Book{}, ErrMissingID
	}

	sanitizeDraft(&draft)
	if err := validateDraft(draft); err != nil {
		return catalog.Book{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	prior, err := s.GetByID(ctx, id)
	if err != nil {
		return catalog.Book{}, err
	}

	doc, err := buildDocument(draft, &prior)
	if err != nil {
		return catalog.Book{}, err
	}

	patch := s.client.Patch(id).Set(doc)
	if rev != "" {
		patch = patch.IfRevision(rev)
	}
	raw, err := patch.Commit(ctx)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("update book %s: %w", id, err)
	}

	var updated catalog.Book
	if err := json.Unmarshal(raw, &updated); err != nil {
		return catalog.Book{}, fmt.Errorf("update book %s: decode result: %w", id, err)
	}
	return updated, nil
}
