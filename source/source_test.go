package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"galeria/gallery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func TestDirSourceScansImages(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "beach_day.jpg", "cliffs.png", "notes.txt", "render.webp")

	album, err := (&DirSource{Path: dir}).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, album.Items, 3, "non-image files are skipped")
	assert.Equal(t, filepath.Base(dir), album.Title)

	// Sorted by relative path, titles derived from file names.
	assert.Equal(t, "beach_day.jpg", album.Items[0].ID)
	assert.Equal(t, "beach day", album.Items[0].Title)
	assert.Equal(t, "beach_day.jpg", album.Items[0].Alt)
	assert.Equal(t, filepath.Join(dir, "beach_day.jpg"), album.Items[0].Src)
	assert.Equal(t, "cliffs.png", album.Items[1].ID)
	assert.Equal(t, "render.webp", album.Items[2].ID)
}

func TestDirSourceRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.jpg", filepath.Join("nested", "deep.jpg"))

	flat, err := (&DirSource{Path: dir}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, flat.Items, 1, "non-recursive scan stays at the top level")

	deep, err := (&DirSource{Path: dir, Recursive: true}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, deep.Items, 2)
	assert.Equal(t, filepath.Join("nested", "deep.jpg"), deep.Items[0].ID)
}

func TestDirSourceMissingDir(t *testing.T) {
	_, err := (&DirSource{Path: filepath.Join(t.TempDir(), "nope")}).Load(context.Background())
	assert.Error(t, err)
}

func TestDirSourceNotADir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "single.jpg")
	_, err := (&DirSource{Path: filepath.Join(dir, "single.jpg")}).Load(context.Background())
	assert.Error(t, err)
}

func TestDirSourceCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&DirSource{Path: dir}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManifestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.json")
	manifest := `{
		"title": "Iceland",
		"description": "Ring road, summer 2025",
		"items": [
			{"id": "glacier", "src": "/photos/glacier.jpg", "alt": "A glacier lagoon", "title": "Glacier", "caption": "Early morning at the lagoon"},
			{"src": "/photos/puffin.jpg"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	album, err := (&ManifestSource{Path: path}).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Iceland", album.Title)
	assert.Equal(t, "Ring road, summer 2025", album.Description)
	require.Len(t, album.Items, 2)
	assert.Equal(t, "glacier", album.Items[0].ID)
	assert.Equal(t, "Early morning at the lagoon", album.Items[0].Caption)

	// Missing id and alt fall back to the src.
	assert.Equal(t, "/photos/puffin.jpg", album.Items[1].ID)
	assert.Equal(t, "puffin.jpg", album.Items[1].Alt)
}

func TestManifestSourceDefaultTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summer-trip.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": []}`), 0644))

	album, err := (&ManifestSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "summer trip", album.Title)
}

func TestManifestSourceErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{`},
		{name: "item without src", content: `{"items": [{"id": "x"}]}`},
		{name: "duplicate ids", content: `{"items": [{"id": "x", "src": "/a.jpg"}, {"id": "x", "src": "/b.jpg"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := (&ManifestSource{Path: path}).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestPager(t *testing.T) {
	items := make([]gallery.Item, 5)
	for i := range items {
		items[i] = gallery.Item{ID: string(rune('a' + i)), Src: "/x", Alt: "x"}
	}

	p := NewPager(items, 2)
	assert.True(t, p.HasMore())

	assert.Len(t, p.Next(), 2)
	assert.Len(t, p.Next(), 2)
	assert.Equal(t, 4, p.Served())

	last := p.Next()
	require.Len(t, last, 1)
	assert.Equal(t, "e", last[0].ID)
	assert.False(t, p.HasMore())
	assert.Nil(t, p.Next())

	p.Reset()
	assert.True(t, p.HasMore())
	assert.Len(t, p.Next(), 2)
}

func TestPagerWholeCollection(t *testing.T) {
	items := []gallery.Item{{ID: "a", Src: "/a", Alt: "a"}}
	p := NewPager(items, 0)
	assert.Len(t, p.Next(), 1)
	assert.False(t, p.HasMore())
}
