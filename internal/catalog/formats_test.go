package catalog_test

import (
	"reflect"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
)

func TestParseFormat(t *testing.T) {
	for _, f := range catalog.AllFormats {
		got, err := catalog.ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := catalog.ParseFormat("ebook"); err == nil {
		t.Error("labels are case-sensitive; lowercase should fail")
	}
	if _, err := catalog.ParseFormat("Audiobook"); err == nil {
		t.Error("unknown label should fail")
	}
}

func TestToggleFormat(t *testing.T) {
	var formats []catalog.Format

	formats = catalog.ToggleFormat(formats, catalog.FormatPaperback)
	formats = catalog.ToggleFormat(formats, catalog.FormatEbook)
	want := []catalog.Format{catalog.FormatPaperback, catalog.FormatEbook}
	if !reflect.DeepEqual(formats, want) {
		t.Fatalf("after two adds: %v, want %v", formats, want)
	}

	// Removing the first keeps the remainder's order.
	formats = catalog.ToggleFormat(formats, catalog.FormatPaperback)
	want = []catalog.Format{catalog.FormatEbook}
	if !reflect.DeepEqual(formats, want) {
		t.Fatalf("after remove: %v, want %v", formats, want)
	}

	// Toggling twice restores contents.
	formats = catalog.ToggleFormat(formats, catalog.FormatHardcover)
	formats = catalog.ToggleFormat(formats, catalog.FormatHardcover)
	want = []catalog.Format{catalog.FormatEbook}
	if !reflect.DeepEqual(formats, want) {
		t.Fatalf("after double toggle: %v, want %v", formats, want)
	}
}

func TestValidFormats(t *testing.T) {
	if err := catalog.ValidFormats([]catalog.Format{catalog.FormatEbook, catalog.FormatHardcover}); err != nil {
		t.Errorf("valid list rejected: %v", err)
	}
	if err := catalog.ValidFormats([]catalog.Format{catalog.FormatEbook, catalog.FormatEbook}); err == nil {
		t.Error("duplicate should be rejected")
	}
	if err := catalog.ValidFormats([]catalog.Format{"Vinyl"}); err == nil {
		t.Error("unknown label should be rejected")
	}
}
