package search_test

import (
	"reflect"
	"testing"

	"github.com/AhmedAli0123/books-by-karl/internal/search"
)

var titles = []string{
	"Living the Dreams",
	"Dream Harder",
	"Quiet Rivers",
	"The Dreamer's Almanac",
	"Afterlight",
}

func TestSuggestFrom(t *testing.T) {
	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"empty query", "", nil},
		{"whitespace query", "   ", nil},
		{"case-insensitive", "DREAM", []string{"Living the Dreams", "Dream Harder", "The Dreamer's Almanac"}},
		{"caps at limit", "e", []string{"Living the Dreams", "Dream Harder", "Quiet Rivers"}},
		{"no match", "zebra", []string{}},
		{"single match", "after", []string{"Afterlight"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.SuggestFrom(titles, tt.q, search.MaxSuggestions)
			if tt.want == nil {
				if got != nil {
					t.Errorf("SuggestFrom(%q) = %v, want nil", tt.q, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestFrom(%q) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestPushRecent(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		term     string
		want     []string
	}{
		{"empty history", nil, "dreams", []string{"dreams"}},
		{"prepends", []string{"rivers"}, "dreams", []string{"dreams", "rivers"}},
		{"dedupes to front", []string{"rivers", "dreams", "night"}, "dreams", []string{"dreams", "rivers", "night"}},
		{"caps at three", []string{"a", "b", "c"}, "d", []string{"d", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.PushRecent(tt.existing, tt.term, search.MaxRecent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PushRecent(%v, %q) = %v, want %v", tt.existing, tt.term, got, tt.want)
			}
		})
	}
}
