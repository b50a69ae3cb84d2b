package books

import (
	"context"

	"github.com/AhmedAli0123/books-by-karl/internal/catalog"
	"github.com/AhmedAli0123/books-by-karl/internal/content/imageurl"
	"github.com/AhmedAli0123/books-by-karl/internal/portabletext"
)

// ListItem is one row of the public books table.
type ListItem struct {
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	Author           string           `json:"author,omitempty"`
	FormatsAvailable []catalog.Format `json:"formatsAvailable"`
	PublishedDate    catalog.Date     `json:"publishedDate"`
	CoverURL         string           `json:"coverUrl,omitempty"`
	Preview          string           `json:"preview,omitempty"`
}

// Detail is the full public book page payload.
type Detail struct {
	ID               string               `json:"id"`
	Slug             string               `json:"slug"`
	Name             string               `json:"name"`
	Author           string               `json:"author,omitempty"`
	Authors          []string             `json:"authors,omitempty"`
	FormatsAvailable []catalog.Format     `json:"formatsAvailable"`
	PublishedDate    catalog.Date         `json:"publishedDate"`
	BookLink         string               `json:"bookLink,omitempty"`
	CoverURL         string               `json:"coverUrl,omitempty"`
	Description      []portabletext.Block `json:"description"`
	Excerpt          *catalog.Excerpt     `json:"excerpt,omitempty"`
}

// AdminBook is the admin list/detail shape: the stored document plus a
// flattened description for row previews and the edit form.
type AdminBook struct {
	catalog.Book
	DescriptionText string `json:"descriptionText"`
	CoverURL        string `json:"coverUrl,omitempty"`
}

// coverURL renders the stored cover reference. Platform-shaped refs go
// through the CDN URL builder; anything else is a bucket object key and is
// presigned per read (presigned URLs expire, so none are ever stored).
func (h *Handler) coverURL(ctx context.Context, b catalog.Book) string {
	if b.Image == nil || b.Image.Asset.Ref == "" {
		return ""
	}
	ref := b.Image.Asset.Ref
	if imageurl.IsRef(ref) {
		u, err := h.images.URLWith(ref, imageurl.Options{Width: 400})
		if err != nil {
			return ""
		}
		return u
	}
	if h.covers != nil {
		u, err := h.covers.ResolveURL(ctx, ref)
		if err != nil {
			return ""
		}
		return u
	}
	return ""
}

func (h *Handler) toListItem(ctx context.Context, b catalog.Book) ListItem {
	return ListItem{
		Slug:             b.Slug.Current,
		Name:             b.Name,
		Author:           b.Author,
		FormatsAvailable: b.FormatsAvailable,
		PublishedDate:    b.PublishedDate,
		CoverURL:         h.coverURL(ctx, b),
		Preview:          b.DescriptionText(),
	}
}

func (h *Handler) toDetail(ctx context.Context, b catalog.Book) Detail {
	return Detail{
		ID:               b.ID,
		Slug:             b.Slug.Current,
		Name:             b.Name,
		Author:           b.Author,
		Authors:          b.Authors,
		FormatsAvailable: b.FormatsAvailable,
		PublishedDate:    b.PublishedDate,
		BookLink:         b.BookLink,
		CoverURL:         h.coverURL(ctx, b),
		Description:      b.Description,
		Excerpt:          b.PreferredExcerpt(),
	}
}

func (h *Handler) toAdminBook(ctx context.Context, b catalog.Book) AdminBook {
	return AdminBook{
		Book:            b,
		DescriptionText: b.DescriptionText(),
		CoverURL:        h.coverURL(ctx, b),
	}
}
