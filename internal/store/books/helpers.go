package books

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

// ErrInvalid tags draft validation failures so handlers can answer 400
// instead of blaming the store.
var ErrInvalid = errors.New("invalid book draft")

// sanitizeDraft trims whitespace on every flat field.
func sanitizeDraft(d *BookDraft) {
	d.Name = strings.TrimSpace(d.Name)
	d.Slug = strings.TrimSpace(d.Slug)
	d.Author = strings.TrimSpace(d.Author)
	for i := range d.Authors {
		d.Authors[i] = strings.TrimSpace(d.Authors[i])
	}
	d.PublishedDate = strings.TrimSpace(d.PublishedDate)
	d.BookLink = strings.TrimSpace(d.BookLink)
	d.Description = strings.TrimSpace(d.Description)
}

// validateDraft enforces the creation invariants: non-empty title, formats
// drawn from the enumeration, non-empty description.
func validateDraft(d BookDraft) error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if len(d.Name) > 200 {
		return errors.New("name must be <= 200 chars")
	}
	if d.Description == "" {
		return errors.New("description is required")
	}
	for _, f := range d.FormatsAvailable {
		if _, err := catalog.ParseFormat(f); err != nil {
			return err
		}
	}
	if d.Slug != "" && !catalog.ValidSlug(catalog.Slugify(d.Slug)) {
		return fmt.Errorf("invalid slug %q", d.Slug)
	}
	return nil
}

// resolveSlug prefers the explicit override, normalized; otherwise derives
// from the title.
func resolveSlug(d BookDraft) string {
	if d.Slug != "" {
		return catalog.Slugify(d.Slug)
	}
	return catalog.Slugify(d.Name)
}

func draftFormats(d BookDraft) []catalog.Format {
	out := make([]catalog.Format, 0, len(d.FormatsAvailable))
	seen := make(map[string]struct{}, len(d.FormatsAvailable))
	for _, f := range d.FormatsAvailable {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, catalog.Format(f))
	}
	return out
}

// excerptFromDraft wraps a plain-text excerpt draft back into the stored
// shape. Drafts with no content produce nil so empty substructures are not
// persisted.
func excerptFromDraft(kind catalog.ExcerptKind, d ExcerptDraft, prior *catalog.Excerpt) *catalog.Excerpt {
	if strings.TrimSpace(d.Content) == "" {
		return nil
	}
	e := &catalog.Excerpt{
		Kind:    kind,
		Chapter: d.Chapter,
		Title:   d.Title,
		Years:   d.Years,
	}
	// Keep the original block structure whenever the text is unchanged;
	// re-wrapping into a single plain block is reserved for actual edits.
	if prior != nil && portabletext.PlainText(prior.Content) == d.Content {
		e.Content = prior.Content
	} else {
		e.Content = portabletext.FromPlainText(string(kind), d.Content)
	}
	return e
}

// buildDocument assembles the full stored document from a sanitized draft.
// prior is nil on create; on update it supplies block structure to preserve
// for fields whose flattened text did not change.
func buildDocument(d BookDraft, prior *catalog.Book) (catalog.Book, error) {
	doc := catalog.Book{
		DocType:          "book",
		Name:             d.Name,
		Slug:             catalog.Slug{Type: "slug", Current: resolveSlug(d)},
		Author:           d.Author,
		Authors:          d.Authors,
		FormatsAvailable: draftFormats(d),
		BookLink:         d.BookLink,
	}

	if d.PublishedDate != "" {
		raw := fmt.Sprintf("%q", d.PublishedDate)
		if err := doc.PublishedDate.UnmarshalJSON([]byte(raw)); err != nil {
			return catalog.Book{}, err
		}
	}

	if prior != nil && portabletext.PlainText(prior.Description) == d.Description {
		doc.Description = prior.Description
	} else {
		doc.Description = portabletext.FromPlainText("description", d.Description)
	}

	var priorRead, priorSample *catalog.Excerpt
	if prior != nil {
		priorRead, priorSample = prior.ReadSample, prior.Sample
	}
	doc.ReadSample = excerptFromDraft(catalog.ExcerptReadSample, d.ReadSample, priorRead)
	doc.Sample = excerptFromDraft(catalog.ExcerptSample, d.Sample, priorSample)

	switch {
	case d.ImageAssetID != "":
		doc.Image = catalog.NewImageRef(d.ImageAssetID)
	case prior != nil:
		doc.Image = prior.Image
	}

	return doc, nil
}
