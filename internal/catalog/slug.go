package catalog

import (
	"regexp"
	"strings"
)

var (
	slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)
	slugShapeRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify derives a URL-safe identifier from a title: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, no leading/trailing hyphen.
// "Living the Dreams: Part 2!" -> "living-the-dreams-part-2".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 96 {
		slug = strings.Trim(slug[:96], "-")
	}
	return slug
}

// ValidSlug reports whether s already has the canonical slug shape.
func ValidSlug(s string) bool {
	return slugShapeRe.MatchString(s)
}
