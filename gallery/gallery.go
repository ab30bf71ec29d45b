package gallery

// Layout selects how the populated gallery is arranged on screen. The layout
// affects rendering only; selection, lightbox and load-more behavior are
// identical across layouts.
type Layout string

const (
	LayoutGrid     Layout = "grid"
	LayoutMasonry  Layout = "masonry"
	LayoutList     Layout = "list"
	LayoutCarousel Layout = "carousel"
)

// ValidLayout reports whether s names a known layout.
func ValidLayout(s string) bool {
	switch Layout(s) {
	case LayoutGrid, LayoutMasonry, LayoutList, LayoutCarousel:
		return true
	}
	return false
}

// Size selects the cell size used by the grid and masonry layouts.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Branch is one of the four mutually exclusive render states of a gallery.
type Branch int

const (
	// BranchLoading takes priority over everything else.
	BranchLoading Branch = iota
	// BranchError is shown when the caller reported an error and we are not
	// loading.
	BranchError
	// BranchEmpty is shown when there are no items, no error, and no load in
	// flight.
	BranchEmpty
	// BranchPopulated renders the items.
	BranchPopulated
)

// Options is the configuration surface of a gallery. The zero value is a
// non-selectable grid without lightbox or infinite scroll.
type Options struct {
	Layout       Layout
	Size         Size
	Columns      int // 0 means auto
	Selectable   bool
	MultiSelect  bool
	Lightbox     bool
	ShowCaptions bool
	// InfiniteScroll enables the sentinel load trigger. It only takes effect
	// once a load-more listener is attached via OnLoadMore.
	InfiniteScroll bool
	// Label names the gallery region for titles and frame headers.
	Label string
}

// Gallery is the composition root of the interaction engine. It owns the item
// collection and the three controllers, and routes activation events to each
// of them. It is a pure state machine: rendering and key decoding live in the
// ui and app packages.
type Gallery struct {
	opts    Options
	items   []Item
	loading bool
	errMsg  string

	selection *Selection
	lightbox  *Lightbox
	trigger   *LoadTrigger

	onItemClick func(Item, int)
}

// New creates a gallery with no items and no load in flight.
func New(opts Options) *Gallery {
	if opts.Layout == "" {
		opts.Layout = LayoutGrid
	}
	if opts.Size == "" {
		opts.Size = SizeMD
	}
	mode := SelectSingle
	if opts.MultiSelect {
		mode = SelectMultiple
	}
	return &Gallery{
		opts:      opts,
		selection: NewSelection(mode),
		lightbox:  NewLightbox(),
		trigger:   NewLoadTrigger(),
	}
}

// Options returns the configuration the gallery was created with.
func (g *Gallery) Options() Options {
	return g.opts
}

// OnSelect registers the listener invoked with the materialized selection on
// every selection change.
func (g *Gallery) OnSelect(fn func([]Item)) {
	g.selection.SetListener(fn)
}

// OnItemClick registers the listener invoked for every activation, regardless
// of whether selection or lightbox are enabled.
func (g *Gallery) OnItemClick(fn func(Item, int)) {
	g.onItemClick = fn
}

// OnLoadMore attaches the load-more listener to the sentinel trigger. Without
// the InfiniteScroll option this is a no-op: the sentinel is never observed.
func (g *Gallery) OnLoadMore(fn func()) {
	if !g.opts.InfiniteScroll {
		return
	}
	g.trigger.Attach(fn)
}

// Close releases the load trigger. Call on teardown so no load-more fires
// after the gallery is gone.
func (g *Gallery) Close() {
	g.trigger.Detach()
}

// SetLoading toggles the loading branch.
func (g *Gallery) SetLoading(loading bool) {
	g.loading = loading
}

// SetError sets the caller-reported error message, shown verbatim in the
// error branch. An empty string clears it.
func (g *Gallery) SetError(msg string) {
	g.errMsg = msg
}

// Error returns the caller-reported error message, if any.
func (g *Gallery) Error() string {
	return g.errMsg
}

// Items returns the current item collection.
func (g *Gallery) Items() []Item {
	return g.items
}

// Len returns the number of items.
func (g *Gallery) Len() int {
	return len(g.items)
}

// ReplaceItems swaps in a new collection. A replacement is a fresh start:
// the selection is reset and an open lightbox closes rather than pointing at
// a stale index.
func (g *Gallery) ReplaceItems(items []Item) {
	g.items = items
	g.selection.SetItems(items)
	g.lightbox.Reset(len(items))
}

// AppendItems adds items from a load-more page. Selection and lightbox state
// survive: existing indices and ids are still valid.
func (g *Gallery) AppendItems(items []Item) {
	g.items = append(g.items, items...)
	g.selection.Append(items)
	g.lightbox.SetLength(len(g.items))
}

// Branch evaluates the render branch in priority order. Exactly one branch is
// active for any combination of loading, error and items.
func (g *Gallery) Branch() Branch {
	switch {
	case g.loading:
		return BranchLoading
	case g.errMsg != "":
		return BranchError
	case len(g.items) == 0:
		return BranchEmpty
	default:
		return BranchPopulated
	}
}

// Activate handles one activation (click, Enter or Space) of the item at
// index. The item-click listener, selection and lightbox are independent
// observers of the same event; all of those that are configured fire. Out of
// range indices and activations outside the populated branch are no-ops.
func (g *Gallery) Activate(index int) {
	if g.Branch() != BranchPopulated || index < 0 || index >= len(g.items) {
		return
	}
	item := g.items[index]
	if g.onItemClick != nil {
		g.onItemClick(item, index)
	}
	if g.opts.Selectable {
		g.selection.Toggle(item.ID)
	}
	if g.opts.Lightbox {
		g.lightbox.Open(index)
	}
}

// ObserveSentinel records one visibility observation of the trailing sentinel.
// Outside the populated branch the sentinel is not rendered, so visibility is
// forced to false; that also re-arms the trigger while a load is in flight.
func (g *Gallery) ObserveSentinel(visible bool) {
	if g.Branch() != BranchPopulated {
		visible = false
	}
	g.trigger.Observe(visible)
}

// Selection exposes the selection controller.
func (g *Gallery) Selection() *Selection {
	return g.selection
}

// Lightbox exposes the lightbox controller.
func (g *Gallery) Lightbox() *Lightbox {
	return g.lightbox
}
