package catalog

import "fmt"

// Format is an enumerated availability label.
type Format string

const (
	FormatEbook     Format = "Ebook"
	FormatPaperback Format = "Paperback"
	FormatHardcover Format = "Hardcover"
)

// AllFormats in display order.
var AllFormats = []Format{FormatEbook, FormatPaperback, FormatHardcover}

// ParseFormat validates a label against the enumeration.
func ParseFormat(s string) (Format, error) {
	for _, f := range AllFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// ToggleFormat adds f to the end of the list when absent and removes it when
// present. Order is append-only: existing entries keep their positions, so
// toggling twice restores the original contents.
func ToggleFormat(formats []Format, f Format) []Format {
	for i, have := range formats {
		if have == f {
			return append(formats[:i:i], formats[i+1:]...)
		}
	}
	return append(formats, f)
}

// ValidFormats reports whether every entry is drawn from the enumeration and
// no label appears twice.
func ValidFormats(formats []Format) error {
	seen := make(map[Format]struct{}, len(formats))
	for _, f := range formats {
		if _, err := ParseFormat(string(f)); err != nil {
			return err
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("duplicate format %q", f)
		}
		seen[f] = struct{}{}
	}
	return nil
}
