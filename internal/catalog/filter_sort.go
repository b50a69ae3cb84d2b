package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode enumerates the public list orderings.
type SortMode string

const (
	SortTitleAsc  SortMode = "title-asc"
	SortTitleDesc SortMode = "title-desc"
	SortDateAsc   SortMode = "date-asc"
	SortDateDesc  SortMode = "date-desc"
)

// ParseSortMode falls back to title-asc for unknown values.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortTitleDesc, SortDateAsc, SortDateDesc:
		return SortMode(s)
	default:
		return SortTitleAsc
	}
}

// Filter returns the books whose title or any format label contains term,
// case-insensitively. An empty term returns the input unchanged. Purely
// in-memory; the catalog is small enough that we re-run this per request.
func Filter(books []Book, term string) []Book {
	term = strings.TrimSpace(term)
	if term == "" {
		return books
	}
	needle := strings.ToLower(term)
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			out = append(out, b)
			continue
		}
		for _, f := range b.FormatsAvailable {
			if strings.Contains(strings.ToLower(string(f)), needle) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// Sort orders books in place. Title modes use locale collation on the name
// (the site previously relied on localeCompare); date modes compare the
// parsed publish date numerically. A collator is built per call: collators
// carry internal buffers and must not be shared across requests.
func Sort(books []Book, mode SortMode) {
	titleCollator := collate.New(language.English, collate.IgnoreCase)
	switch mode {
	case SortTitleDesc:
		sort.SliceStable(books, func(i, j int) bool {
			return titleCollator.CompareString(books[i].Name, books[j].Name) > 0
		})
	case SortDateAsc:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].PublishedDate.Before(books[j].PublishedDate.Time)
		})
	case SortDateDesc:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].PublishedDate.After(books[j].PublishedDate.Time)
		})
	default:
		sort.SliceStable(books, func(i, j int) bool {
			return titleCollator.CompareString(books[i].Name, books[j].Name) < 0
		})
	}
}
