package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

func TestDateLenientParsing(t *testing.T) {
	tests := []struct {
		raw  string
		want string // canonical form after re-marshal
	}{
		{`"2021-06-01"`, `"2021-06-01"`},
		{`"2021/06/01"`, `"2021-06-01"`},
		{`"June 1, 2021"`, `"2021-06-01"`},
		{`""`, `null`},
	}
	for _, tt := range tests {
		var d catalog.Date
		if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
			t.Errorf("unmarshal %s: %v", tt.raw, err)
			continue
		}
		out, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != tt.want {
			t.Errorf("date %s round-tripped to %s, want %s", tt.raw, out, tt.want)
		}
	}

	var d catalog.Date
	if err := json.Unmarshal([]byte(`"not a date"`), &d); err == nil {
		t.Error("garbage date should fail to parse")
	}
}

func TestPreferredExcerpt(t *testing.T) {
	sample := &catalog.Excerpt{Kind: catalog.ExcerptSample, Title: "Sample"}
	readSample := &catalog.Excerpt{Kind: catalog.ExcerptReadSample, Title: "Read"}

	b := catalog.Book{Sample: sample, ReadSample: readSample}
	if got := b.PreferredExcerpt(); got != sample {
		t.Errorf("both present: got %v, want sample", got)
	}

	b = catalog.Book{ReadSample: readSample}
	if got := b.PreferredExcerpt(); got != readSample {
		t.Errorf("only readSample: got %v, want readSample", got)
	}

	b = catalog.Book{}
	if got := b.PreferredExcerpt(); got != nil {
		t.Errorf("neither present: got %v, want nil", got)
	}
}

func TestNewImageRef(t *testing.T) {
	ref := catalog.NewImageRef("image-abc123-800x1200-jpg")
	if ref.Type != "image" || ref.Asset.Type != "reference" {
		t.Errorf("unexpected ref shape: %+v", ref)
	}
	if ref.Asset.Ref != "image-abc123-800x1200-jpg" {
		t.Errorf("asset ref = %q", ref.Asset.Ref)
	}
}

func TestDescriptionText(t *testing.T) {
	b := catalog.Book{Description: portabletext.FromPlainText("d", "About the book.")}
	if got := b.DescriptionText(); got != "About the book." {
		t.Errorf("DescriptionText() = %q", got)
	}
}
