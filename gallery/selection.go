package gallery

// SelectionMode controls how many items may be selected at once.
type SelectionMode int

const (
	// SelectSingle keeps at most one item selected; selecting a new item
	// replaces the previous one.
	SelectSingle SelectionMode = iota
	// SelectMultiple allows any number of items to be selected.
	SelectMultiple
)

// Selection tracks which items in a gallery are currently selected. It holds
// ids internally and materializes full items in source order on demand, so
// listener output is deterministic regardless of click order.
//
// Selection is a pure in-memory state machine with no failure modes. All
// methods are safe to call in any state.
type Selection struct {
	mode     SelectionMode
	items    []Item
	selected map[string]bool
	listener func([]Item)
}

// NewSelection creates an empty selection over an empty collection.
func NewSelection(mode SelectionMode) *Selection {
	return &Selection{
		mode:     mode,
		selected: make(map[string]bool),
	}
}

// SetListener registers the func invoked with the materialized selection after
// every mutating call. Pass nil to unregister.
func (s *Selection) SetListener(fn func([]Item)) {
	s.listener = fn
}

// Mode returns the selection mode.
func (s *Selection) Mode() SelectionMode {
	return s.mode
}

// SetItems replaces the backing collection. A wholesale replacement resets the
// selection; the listener is notified only if something was actually deselected.
func (s *Selection) SetItems(items []Item) {
	s.items = items
	if len(s.selected) == 0 {
		return
	}
	s.selected = make(map[string]bool)
	s.notify()
}

// Append extends the backing collection in place, preserving the current
// selection. Used when more items arrive from an infinite-scroll load.
func (s *Selection) Append(items []Item) {
	s.items = append(s.items, items...)
}

// Toggle flips the selected state of the item with the given id. Toggling an
// id that is not in the backing collection is a no-op. In single mode,
// selecting a new id replaces any previously selected one.
func (s *Selection) Toggle(id string) {
	if !s.contains(id) {
		return
	}
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		if s.mode == SelectSingle {
			s.selected = make(map[string]bool)
		}
		s.selected[id] = true
	}
	s.notify()
}

// IsSelected reports whether the item with the given id is selected.
func (s *Selection) IsSelected(id string) bool {
	return s.selected[id]
}

// Len returns the number of selected items.
func (s *Selection) Len() int {
	return len(s.selected)
}

// Selected materializes the selection: the full items for every selected id,
// in the order they appear in the backing collection.
func (s *Selection) Selected() []Item {
	out := make([]Item, 0, len(s.selected))
	for _, item := range s.items {
		if s.selected[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

// Clear deselects everything. The listener is notified only if the selection
// was non-empty.
func (s *Selection) Clear() {
	if len(s.selected) == 0 {
		return
	}
	s.selected = make(map[string]bool)
	s.notify()
}

func (s *Selection) contains(id string) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *Selection) notify() {
	if s.listener != nil {
		s.listener(s.Selected())
	}
}
