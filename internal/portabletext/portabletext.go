package portabletext

import (
	"strings"

	"github.com/google/uuid"
)

// Span is an inline run of literal text with optional decorator marks
// (strong, em, code, underline, strike-through) or mark-def references.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// MarkDef is an annotation referenced from span marks, e.g. a link.
type MarkDef struct {
	Type string `json:"_type"`
	Key  string `json:"_key"`
	Href string `json:"href,omitempty"`
}

// Block is one node of a rich-text sequence. Only nodes with Type == "block"
// carry text; anything else (inline images etc.) is opaque to us.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs"`
}

// IsText reports whether the block contributes text to a plain rendering.
func (b Block) IsText() bool {
	return b.Type == "block"
}

// PlainText flattens a block sequence to a plain string: spans concatenated
// per block with no separator, blocks joined by one blank line. Non-text
// blocks contribute an empty string. Lossy on purpose; used for previews and
// the admin edit round-trip, never for storage.
func PlainText(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		if !b.IsText() {
			continue
		}
		var sb strings.Builder
		for _, c := range b.Children {
			sb.WriteString(c.Text)
		}
		parts[i] = sb.String()
	}
	return strings.Join(parts, "\n\n")
}

// PlainTextBlock flattens a single block.
func PlainTextBlock(b Block) string {
	return PlainText([]Block{b})
}

// FromPlainText wraps text into a single normal-style block with one unmarked
// span. keyPrefix seeds the block/span keys so repeated saves of the same
// field stay addressable; an empty prefix gets random keys.
func FromPlainText(keyPrefix, text string) []Block {
	if keyPrefix == "" {
		keyPrefix = uuid.NewString()[:8]
	}
	return []Block{{
		Type:     "block",
		Key:      keyPrefix + "1",
		Style:    "normal",
		MarkDefs: []MarkDef{},
		Children: []Span{{
			Type:  "span",
			Key:   keyPrefix + "1_span",
			Text:  text,
			Marks: []string{},
		}},
	}}
}
