package books

import (
	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

// DraftFromBook flattens a stored document into the plain-text editing
// shape: what the edit form is prefilled with on entry.
func DraftFromBook(b catalog.Book) BookDraft {
	d := BookDraft{
		Name:             b.Name,
		Slug:             b.Slug.Current,
		Author:           b.Author,
		Authors:          b.Authors,
		BookLink:         b.BookLink,
		Description:      portabletext.PlainText(b.Description),
		FormatsAvailable: make([]string, 0, len(b.FormatsAvailable)),
	}
	for _, f := range b.FormatsAvailable {
		d.FormatsAvailable = append(d.FormatsAvailable, string(f))
	}
	if !b.PublishedDate.IsZero() {
		d.PublishedDate = b.PublishedDate.Format("2006-01-02")
	}
	if b.ReadSample != nil {
		d.ReadSample = ExcerptDraft{
			Chapter: b.ReadSample.Chapter,
			Title:   b.ReadSample.Title,
			Years:   b.ReadSample.Years,
			Content: b.ReadSample.ContentText(),
		}
	}
	if b.Sample != nil {
		d.Sample = ExcerptDraft{
			Chapter: b.Sample.Chapter,
			Title:   b.Sample.Title,
			Content: b.Sample.ContentText(),
		}
	}
	return d
}
