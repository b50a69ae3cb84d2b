package books

import (
	"context"
	"fmt"
)

// Delete removes a book document. Irreversible on the store side; a second
// delete of the same ID comes back as content.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := s.client.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}
