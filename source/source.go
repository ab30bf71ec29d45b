// Package source loads gallery items from the places they live: image
// directories and album manifest files. Sources resolve items up front; the
// gallery itself never touches the filesystem or the network.
package source

import (
	"context"
	"strings"

	"galeria/gallery"
)

// Album is a loaded collection of items with optional presentation metadata.
type Album struct {
	Title       string
	Description string
	Items       []gallery.Item
}

// Source loads an album of gallery items.
type Source interface {
	Load(ctx context.Context) (*Album, error)
}

// titleFromName derives a display title from a file name: extension stripped,
// separators spaced out.
func titleFromName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}
