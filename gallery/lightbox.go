package gallery

import "fmt"

// Lightbox is the open/closed navigation state of the full-size image view.
// While open it holds a valid index into the item collection; Next and Prev
// wrap around at either end rather than clamping.
type Lightbox struct {
	open   bool
	index  int
	length int
}

// NewLightbox creates a closed lightbox over an empty collection.
func NewLightbox() *Lightbox {
	return &Lightbox{}
}

// Open transitions to Open(index). The call is rejected (stays in its current
// state) if the collection is empty or the index is out of range; that is
// reachable only via programming error, so it never panics.
func (l *Lightbox) Open(index int) bool {
	if l.length == 0 || index < 0 || index >= l.length {
		return false
	}
	l.open = true
	l.index = index
	return true
}

// Next advances to the following item, wrapping past the end. No-op while
// closed, and with a single item it stays in place.
func (l *Lightbox) Next() {
	if !l.open {
		return
	}
	l.index = (l.index + 1) % l.length
}

// Prev moves to the preceding item, wrapping past the start.
func (l *Lightbox) Prev() {
	if !l.open {
		return
	}
	l.index = (l.index - 1 + l.length) % l.length
}

// Close dismisses the lightbox. Idempotent.
func (l *Lightbox) Close() {
	l.open = false
}

// IsOpen reports whether the lightbox is showing an item.
func (l *Lightbox) IsOpen() bool {
	return l.open
}

// Index returns the current 0-based position. Only meaningful while open.
func (l *Lightbox) Index() int {
	return l.index
}

// Indicator returns the 1-based position text, e.g. "3 / 12".
func (l *Lightbox) Indicator() string {
	return fmt.Sprintf("%d / %d", l.index+1, l.length)
}

// SetLength updates the collection length after a load-more append. The
// lightbox stays open; the current index is still valid because appends only
// grow the collection.
func (l *Lightbox) SetLength(n int) {
	l.length = n
}

// Reset closes the lightbox and adopts a new collection length. Called when
// the backing collection is replaced wholesale: a stale index into a new
// collection would be meaningless, so the safer policy is to close.
func (l *Lightbox) Reset(n int) {
	l.open = false
	l.index = 0
	l.length = n
}
