package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

// Date is a calendar date marshalled as YYYY-MM-DD. The content store keeps
// publish dates as plain date strings; a couple of legacy documents carry
// other layouts, so parsing is lenient.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	time.RFC3339,
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date format (string expected): %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse date: %s", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// Slug mirrors the store's slug object shape.
type Slug struct {
	Type    string `json:"_type,omitempty"`
	Current string `json:"current"`
}

// ImageRef is a stored reference to an uploaded image asset.
type ImageRef struct {
	Type  string `json:"_type"`
	Asset struct {
		Type string `json:"_type"`
		Ref  string `json:"_ref"`
	} `json:"asset"`
}

// NewImageRef builds the reference object for an uploaded asset ID.
func NewImageRef(assetID string) *ImageRef {
	ref := &ImageRef{Type: "image"}
	ref.Asset.Type = "reference"
	ref.Asset.Ref = assetID
	return ref
}

// Book is the sole domain entity: one published title in the author's
// catalog. Author holds the primary author; Authors is a legacy co-author
// list that is not consistently populated.
type Book struct {
	ID               string               `json:"_id,omitempty"`
	Rev              string               `json:"_rev,omitempty"`
	DocType          string               `json:"_type,omitempty"`
	Name             string               `json:"name"`
	Slug             Slug                 `json:"slug"`
	Author           string               `json:"author,omitempty"`
	Authors          []string             `json:"authors,omitempty"`
	FormatsAvailable []Format             `json:"formatsAvailable"`
	PublishedDate    Date                 `json:"publishedDate"`
	BookLink         string               `json:"bookLink,omitempty"`
	Image            *ImageRef            `json:"image,omitempty"`
	Description      []portabletext.Block `json:"description"`
	ReadSample       *Excerpt             `json:"readSample,omitempty"`
	Sample           *Excerpt             `json:"sample,omitempty"`
}

// DescriptionText returns the flattened description for previews.
func (b Book) DescriptionText() string {
	return portabletext.PlainText(b.Description)
}

// PreferredExcerpt returns the single "about the book" excerpt, preferring
// sample over readSample (the legacy pages disagreed; this is the contract
// the detail page follows).
func (b Book) PreferredExcerpt() *Excerpt {
	if b.Sample != nil {
		return b.Sample
	}
	return b.ReadSample
}
