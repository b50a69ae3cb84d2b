package books

import (
	"github.com/AhmedAli0123/books-by-karl/internal/content"
)

// Store runs catalog reads and admin mutations against the content platform.
// The client is injected; nothing in this package reaches for ambient state.
type Store struct {
	client *content.Client
}

func New(client *content.Client) *Store {
	return &Store{client: client}
}

// ExcerptDraft is the plain-text editing shape for one excerpt substructure.
type ExcerptDraft struct {
	Chapter string `json:"chapter"`
	Title   string `json:"title"`
	Years   string `json:"years,omitempty"`
	Content string `json:"content"`
}

// BookDraft mirrors the Book shape with rich-text fields flattened to plain
// strings, which is how the admin form edits them.
type BookDraft struct {
	Name             string   `json:"name"`
	Slug             string   `json:"slug,omitempty"` // explicit override; derived from Name when empty
	Author           string   `json:"author"`
	Authors          []string `json:"authors,omitempty"`
	FormatsAvailable []string `json:"formatsAvailable"`
	PublishedDate    string   `json:"publishedDate"`
	BookLink         string   `json:"bookLink"`
	ImageAssetID     string   `json:"imageAssetId,omitempty"` // set after a staged upload

	Description string `json:"description"`

	ReadSample ExcerptDraft `json:"readSample"`
	Sample     ExcerptDraft `json:"sample"`
}

// ListQuery narrows the admin list. Q is matched store-side against title,
// author and document identifier.
type ListQuery struct {
	Q string
}
