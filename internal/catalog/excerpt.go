package catalog

import "github.com/AhmedAli0123/books-by-karl/internal/portabletext"

// ExcerptKind discriminates the two historical excerpt substructures. The
// store schema still carries both `sample` and `readSample`; internally they
// are one shape with a kind tag.
type ExcerptKind string

const (
	ExcerptSample     ExcerptKind = "sample"
	ExcerptReadSample ExcerptKind = "readSample"
)

// Excerpt is a chaptered rich-text extract shown on the detail page.
// Years is only ever populated on readSample documents.
type Excerpt struct {
	Kind    ExcerptKind          `json:"-"`
	Chapter string               `json:"chapter,omitempty"`
	Title   string               `json:"title,omitempty"`
	Years   string               `json:"years,omitempty"`
	Content []portabletext.Block `json:"content,omitempty"`
}

// ContentText returns the flattened excerpt body.
func (e *Excerpt) ContentText() string {
	if e == nil {
		return ""
	}
	return portabletext.PlainText(e.Content)
}

// IsZero reports whether the excerpt carries nothing worth storing.
func (e *Excerpt) IsZero() bool {
	return e == nil || (e.Chapter == "" && e.Title == "" && e.Years == "" && len(e.Content) == 0)
}
