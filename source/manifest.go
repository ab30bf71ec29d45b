package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"galeria/gallery"
)

// ManifestSource loads an album from a JSON manifest. Manifests describe
// curated galleries: a title, a description and an ordered list of items with
// pre-resolved source URLs or paths.
type ManifestSource struct {
	Path string
}

type manifest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Items       []manifestItem `json:"items"`
}

type manifestItem struct {
	ID        string `json:"id"`
	Src       string `json:"src"`
	Alt       string `json:"alt"`
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	Thumbnail string `json:"thumbnail"`
}

// Load parses the manifest. Items without a src are rejected; missing ids and
// alt text are derived from the src so every item satisfies the gallery's
// data model.
func (m *ManifestSource) Load(ctx context.Context) (*Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read album manifest: %w", err)
	}

	var mf manifest
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse album manifest %s: %w", m.Path, err)
	}

	album := &Album{
		Title:       mf.Title,
		Description: mf.Description,
		Items:       make([]gallery.Item, 0, len(mf.Items)),
	}
	if album.Title == "" {
		album.Title = titleFromName(filepath.Base(m.Path))
	}

	seen := make(map[string]bool, len(mf.Items))
	for i, mi := range mf.Items {
		if mi.Src == "" {
			return nil, fmt.Errorf("album manifest %s: item %d has no src", m.Path, i)
		}
		if mi.ID == "" {
			mi.ID = mi.Src
		}
		if seen[mi.ID] {
			return nil, fmt.Errorf("album manifest %s: duplicate item id %q", m.Path, mi.ID)
		}
		seen[mi.ID] = true
		if mi.Alt == "" {
			mi.Alt = filepath.Base(mi.Src)
		}
		album.Items = append(album.Items, gallery.Item{
			ID:        mi.ID,
			Src:       mi.Src,
			Alt:       mi.Alt,
			Title:     mi.Title,
			Caption:   mi.Caption,
			Thumbnail: mi.Thumbnail,
		})
	}

	return album, nil
}
