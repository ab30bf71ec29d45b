package source

import "galeria/gallery"

// Pager serves a loaded album in fixed-size pages for infinite scroll. The
// whole collection is resolved up front; paging only throttles how much the
// gallery renders at once.
type Pager struct {
	items    []gallery.Item
	pageSize int
	offset   int
}

// NewPager creates a pager over items. A pageSize of 0 or less serves the
// whole collection as a single page.
func NewPager(items []gallery.Item, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = len(items)
	}
	return &Pager{items: items, pageSize: pageSize}
}

// Next returns the next page, or nil when the collection is exhausted.
func (p *Pager) Next() []gallery.Item {
	if p.offset >= len(p.items) {
		return nil
	}
	end := p.offset + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	page := p.items[p.offset:end]
	p.offset = end
	return page
}

// HasMore reports whether any unserved items remain.
func (p *Pager) HasMore() bool {
	return p.offset < len(p.items)
}

// Served returns how many items have been handed out so far.
func (p *Pager) Served() int {
	return p.offset
}

// Reset rewinds the pager to the start of the collection.
func (p *Pager) Reset() {
	p.offset = 0
}
