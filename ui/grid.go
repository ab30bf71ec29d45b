package ui

import (
	"fmt"
	"hash/fnv"
	"strings"

	"galeria/gallery"
	"galeria/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// cellWidths is the outer cell width (border included) per size.
var cellWidths = map[gallery.Size]int{
	gallery.SizeXS: 14,
	gallery.SizeSM: 18,
	gallery.SizeMD: 24,
	gallery.SizeLG: 30,
	gallery.SizeXL: 38,
}

// artHeights is the height of the image placeholder area per size.
var artHeights = map[gallery.Size]int{
	gallery.SizeXS: 2,
	gallery.SizeSM: 3,
	gallery.SizeMD: 4,
	gallery.SizeLG: 5,
	gallery.SizeXL: 7,
}

const (
	cellGap = 1
	// titleRows is the chrome above the cells: title line plus a blank line.
	titleRows = 2
	// maxCaptionRows bounds how much of a caption a cell shows.
	maxCaptionRows = 2
)

// Grid renders the populated gallery in one of the four layouts and tracks
// the focus cursor and scroll window. Every cell is a tab stop: the cursor
// is the focused item and Enter/Space activate it upstream.
type Grid struct {
	items        []gallery.Item
	layout       gallery.Layout
	size         gallery.Size
	columns      int
	showCaptions bool
	label        string

	width, height int
	cursor        int
	// offset is the first visible row, or the first visible column in the
	// carousel layout.
	offset int

	isSelected func(id string) bool
	renderer   *cellRenderer
}

// NewGrid creates a grid for the given gallery options.
func NewGrid(opts gallery.Options) *Grid {
	return &Grid{
		layout:       opts.Layout,
		size:         opts.Size,
		columns:      opts.Columns,
		showCaptions: opts.ShowCaptions,
		label:        opts.Label,
		renderer:     &cellRenderer{},
	}
}

// SetLabel names the gallery region; shown in the title line.
func (g *Grid) SetLabel(label string) {
	g.label = label
}

// SetSize sets the width and height of the grid area.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetSelectedFunc wires the selection query used to mark selected cells.
func (g *Grid) SetSelectedFunc(fn func(id string) bool) {
	g.isSelected = fn
}

// SetItems replaces the rendered collection and resets cursor and scroll.
func (g *Grid) SetItems(items []gallery.Item) {
	g.items = items
	g.cursor = 0
	g.offset = 0
}

// RefreshItems updates the rendered collection in place, keeping the cursor
// where it is. Used after a load-more append.
func (g *Grid) RefreshItems(items []gallery.Item) {
	g.items = items
	if g.cursor >= len(items) {
		g.cursor = max(0, len(items)-1)
	}
	g.ensureVisible()
}

// Cursor returns the index of the focused item.
func (g *Grid) Cursor() int {
	return g.cursor
}

// SetCursor moves focus to idx. No-op if the index is out of bounds.
func (g *Grid) SetCursor(idx int) {
	if idx < 0 || idx >= len(g.items) {
		return
	}
	g.cursor = idx
	g.ensureVisible()
}

// MoveLeft focuses the previous item.
func (g *Grid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
		g.ensureVisible()
	}
}

// MoveRight focuses the next item.
func (g *Grid) MoveRight() {
	if g.cursor < len(g.items)-1 {
		g.cursor++
		g.ensureVisible()
	}
}

// MoveUp focuses the item one row up. No-op in the carousel layout.
func (g *Grid) MoveUp() {
	if g.layout == gallery.LayoutCarousel {
		return
	}
	cols := g.cols()
	if g.cursor-cols >= 0 {
		g.cursor -= cols
		g.ensureVisible()
	}
}

// MoveDown focuses the item one row down, clamping into a partial last row.
func (g *Grid) MoveDown() {
	if g.layout == gallery.LayoutCarousel {
		return
	}
	cols := g.cols()
	if len(g.items) == 0 || g.cursor/cols == (len(g.items)-1)/cols {
		return
	}
	g.cursor = min(g.cursor+cols, len(g.items)-1)
	g.ensureVisible()
}

// ScrollUp scrolls the window one unit towards the start without moving the
// cursor.
func (g *Grid) ScrollUp() {
	if g.offset > 0 {
		g.offset--
	}
}

// ScrollDown scrolls the window one unit towards the end without moving the
// cursor.
func (g *Grid) ScrollDown() {
	if g.offset < g.maxOffset() {
		g.offset++
	}
}

// SentinelVisible reports whether the trailing sentinel is inside the scroll
// window, i.e. the unit holding the last item is currently rendered. This is
// the visibility signal fed to the gallery's load trigger.
func (g *Grid) SentinelVisible() bool {
	if len(g.items) == 0 {
		return false
	}
	last := g.unitOf(len(g.items) - 1)
	return last >= g.offset && last < g.offset+g.visibleUnits()
}

// String renders the grid.
func (g *Grid) String() string {
	log.RenderTrace("grid", "%d items, cursor=%d, offset=%d", len(g.items), g.cursor, g.offset)

	var b strings.Builder
	b.WriteString(g.titleLine())
	b.WriteString("\n\n")

	g.renderer.width = g.cellWidth() - 2
	g.renderer.showCaptions = g.showCaptions

	var body string
	switch g.layout {
	case gallery.LayoutCarousel:
		body = g.renderCarousel()
	case gallery.LayoutMasonry:
		body = g.renderMasonry()
	default:
		body = g.renderRows()
	}
	b.WriteString(body)

	return lipgloss.Place(g.width, g.height, lipgloss.Left, lipgloss.Top, b.String())
}

func (g *Grid) titleLine() string {
	label := g.label
	if label == "" {
		label = "Gallery"
	}
	title := mainTitleStyle.Render(" " + label + " ")
	count := countStyle.Render(fmt.Sprintf(" %d images", len(g.items)))

	line := title + count
	if n := g.selectedCount(); n > 0 {
		line += " " + selectionTagStyle.Render(fmt.Sprintf(" %d selected ", n))
	}
	return line
}

func (g *Grid) selectedCount() int {
	if g.isSelected == nil {
		return 0
	}
	n := 0
	for _, item := range g.items {
		if g.isSelected(item.ID) {
			n++
		}
	}
	return n
}

func (g *Grid) renderRows() string {
	cols := g.cols()
	start := g.offset * cols
	end := min(len(g.items), (g.offset+g.visibleUnits())*cols)
	if start >= end {
		return ""
	}

	var rows []string
	for i := start; i < end; i += cols {
		rowEnd := min(i+cols, end)
		cells := make([]string, 0, cols)
		for j := i; j < rowEnd; j++ {
			cells = append(cells, g.renderCell(j, g.artHeight()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *Grid) renderMasonry() string {
	cols := g.cols()
	start := g.offset * cols
	end := min(len(g.items), (g.offset+g.visibleUnits())*cols)
	if start >= end {
		return ""
	}

	// Round-robin the visible window across columns; art heights vary per
	// item, so the columns stagger like a masonry wall.
	stacks := make([][]string, cols)
	for i := start; i < end; i++ {
		col := (i - start) % cols
		stacks[col] = append(stacks[col], g.renderCell(i, g.masonryArtHeight(g.items[i].ID)))
	}

	columns := make([]string, 0, cols)
	for _, stack := range stacks {
		if len(stack) == 0 {
			continue
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, stack...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(columns)...)
}

func (g *Grid) renderCarousel() string {
	start := g.offset
	end := min(len(g.items), g.offset+g.visibleUnits())
	if start >= end {
		return ""
	}

	cells := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cells = append(cells, g.renderCell(i, g.artHeight()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cells)...)
}

func (g *Grid) renderCell(idx int, artHeight int) string {
	item := g.items[idx]
	selected := g.isSelected != nil && g.isSelected(item.ID)
	return g.renderer.Render(item, artHeight, selected, idx == g.cursor)
}

// cols returns the effective column count: the configured count, or as many
// cells as fit the width. The list layout always uses a single column.
func (g *Grid) cols() int {
	if g.layout == gallery.LayoutList {
		return 1
	}
	if g.columns > 0 {
		return g.columns
	}
	cols := g.width / (g.cellWidth() + cellGap)
	return max(1, cols)
}

func (g *Grid) cellWidth() int {
	if g.layout == gallery.LayoutList {
		return max(cellWidths[g.size], g.width-2)
	}
	return cellWidths[g.size]
}

func (g *Grid) artHeight() int {
	if g.layout == gallery.LayoutList {
		return artHeights[gallery.SizeXS]
	}
	return artHeights[g.size]
}

// masonryArtHeight varies the placeholder height per item so masonry columns
// stagger. Derived from the id so it is stable across renders.
func (g *Grid) masonryArtHeight(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return g.artHeight() + int(h.Sum32()%3) - 1
}

// cellHeight is the nominal outer cell height used for scroll windowing.
func (g *Grid) cellHeight() int {
	h := g.artHeight() + 1 + 2 // art + title + border
	if g.showCaptions {
		h += maxCaptionRows
	}
	return h
}

// unitOf maps an item index to its scroll unit: a row, or the item's own
// position in the carousel layout.
func (g *Grid) unitOf(idx int) int {
	if g.layout == gallery.LayoutCarousel {
		return idx
	}
	return idx / g.cols()
}

func (g *Grid) totalUnits() int {
	if len(g.items) == 0 {
		return 0
	}
	return g.unitOf(len(g.items)-1) + 1
}

func (g *Grid) visibleUnits() int {
	if g.layout == gallery.LayoutCarousel {
		return max(1, g.width/(g.cellWidth()+cellGap))
	}
	return max(1, (g.height-titleRows)/g.cellHeight())
}

func (g *Grid) maxOffset() int {
	return max(0, g.totalUnits()-g.visibleUnits())
}

func (g *Grid) ensureVisible() {
	if len(g.items) == 0 {
		g.offset = 0
		return
	}
	u := g.unitOf(g.cursor)
	if u < g.offset {
		g.offset = u
	}
	if u >= g.offset+g.visibleUnits() {
		g.offset = u - g.visibleUnits() + 1
	}
	if g.offset > g.maxOffset() {
		g.offset = g.maxOffset()
	}
}

func joinWithGap(parts []string) []string {
	gap := strings.Repeat(" ", cellGap)
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}

// cellRenderer draws a single gallery cell: a bordered card with an image
// placeholder, a title line and optionally a caption.
type cellRenderer struct {
	width        int // inner content width
	showCaptions bool
}

var artStyle = lipgloss.NewStyle().Foreground(TextMuted)
var cellTitleStyle = lipgloss.NewStyle().Foreground(TextPrimary)
var captionStyle = lipgloss.NewStyle().Foreground(TextSecondary)
var selectedMarkStyle = lipgloss.NewStyle().Foreground(Primary)

func (r *cellRenderer) Render(item gallery.Item, artHeight int, selected, focused bool) string {
	var lines []string

	fill := "▒"
	if item.Thumbnail != "" {
		fill = "▓"
	}
	for i := 0; i < artHeight; i++ {
		lines = append(lines, artStyle.Render(strings.Repeat(fill, r.width)))
	}

	title := item.Label()
	if selected {
		marker := IconSelected + " "
		title = runewidth.Truncate(title, max(1, r.width-runewidth.StringWidth(marker)), "…")
		lines = append(lines, selectedMarkStyle.Render(marker)+cellTitleStyle.Render(title))
	} else {
		lines = append(lines, cellTitleStyle.Render(runewidth.Truncate(title, r.width, "…")))
	}

	if r.showCaptions {
		for _, cl := range captionLines(item.Caption, r.width) {
			lines = append(lines, captionStyle.Render(cl))
		}
	}

	card := CardStyle()
	if focused {
		card = FocusedCardStyle()
	}
	return card.Width(r.width).Render(strings.Join(lines, "\n"))
}

// captionLines wraps a caption to the cell width and pads to a fixed number
// of rows so cells in a row stay the same height.
func captionLines(caption string, width int) []string {
	wrapped := strings.Split(wordwrap.String(caption, width), "\n")
	lines := make([]string, maxCaptionRows)
	for i := 0; i < maxCaptionRows; i++ {
		if i < len(wrapped) {
			lines[i] = runewidth.Truncate(wrapped[i], width, "…")
		}
	}
	return lines
}
