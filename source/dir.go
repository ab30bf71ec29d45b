package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"galeria/gallery"
)

// imageExts are the file extensions treated as gallery images. Bytes are
// never decoded; items carry resolved paths only.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".avif": true,
	".svg":  true,
}

// DirSource scans a directory for image files, one item per file. The item id
// is the path relative to the root, so ids stay stable across rescans.
type DirSource struct {
	// Path is the directory to scan.
	Path string
	// Recursive descends into subdirectories.
	Recursive bool
}

// Load scans the directory. Items are sorted by relative path for a
// deterministic collection order.
func (d *DirSource) Load(ctx context.Context) (*Album, error) {
	info, err := os.Stat(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", d.Path)
	}

	var items []gallery.Item
	walk := func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			if !d.Recursive && path != d.Path {
				return fs.SkipDir
			}
			return nil
		}
		if !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			return nil
		}

		rel, err := filepath.Rel(d.Path, path)
		if err != nil {
			return err
		}
		items = append(items, gallery.Item{
			ID:    rel,
			Src:   path,
			Alt:   entry.Name(),
			Title: titleFromName(entry.Name()),
		})
		return nil
	}

	if err := filepath.WalkDir(d.Path, walk); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", d.Path, err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &Album{
		Title: filepath.Base(d.Path),
		Items: items,
	}, nil
}
