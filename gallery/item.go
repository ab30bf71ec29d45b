package gallery

// Item is a single media entry in a gallery. Items are caller-owned and
// immutable; the gallery holds references by index and id but never mutates
// them. Src is expected to be a resolved path or URL.
type Item struct {
	ID        string
	Src       string
	Alt       string
	Title     string
	Caption   string
	Thumbnail string
}

// Label returns the text used to represent the item in list-like views.
// Falls back to Alt when no title is set.
func (i Item) Label() string {
	if i.Title != "" {
		return i.Title
	}
	return i.Alt
}
