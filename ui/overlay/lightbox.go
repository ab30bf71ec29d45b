package overlay

import (
	"strings"

	"galeria/gallery"
	"galeria/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// LightboxOverlay is the full-size image dialog. It renders the active item
// with previous/next affordances and the position indicator, and routes
// navigation keys into the lightbox controller. The controller owns the
// state; this overlay only draws it and decodes keys.
type LightboxOverlay struct {
	Dismissed bool

	gallery *gallery.Gallery
	width   int
}

// NewLightboxOverlay creates the overlay over an open lightbox.
func NewLightboxOverlay(g *gallery.Gallery) *LightboxOverlay {
	return &LightboxOverlay{
		gallery: g,
		width:   60,
	}
}

// SetWidth sets the width of the overlay.
func (l *LightboxOverlay) SetWidth(width int) {
	l.width = width
}

// HandleKeyPress processes a key press. Returns true when the dialog should
// close.
func (l *LightboxOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "right", "l", "n":
		l.gallery.Lightbox().Next()
		return false
	case "left", "h", "p":
		l.gallery.Lightbox().Prev()
		return false
	case "esc", "q":
		l.gallery.Lightbox().Close()
		l.Dismissed = true
		return true
	default:
		return false
	}
}

var lightboxTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF"))

var lightboxArtStyle = lipgloss.NewStyle().Foreground(ui.TextMuted)

var lightboxCaptionStyle = lipgloss.NewStyle().Foreground(ui.TextSecondary)

var lightboxSrcStyle = lipgloss.NewStyle().
	Foreground(ui.TextMuted).
	Italic(true)

var indicatorStyle = lipgloss.NewStyle().
	Foreground(ui.TextPrimary).
	Bold(true)

var affordanceStyle = lipgloss.NewStyle().Foreground(ui.Primary)

var lightboxHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

// Render renders the lightbox dialog.
func (l *LightboxOverlay) Render() string {
	lb := l.gallery.Lightbox()
	if !lb.IsOpen() {
		return ""
	}
	item := l.gallery.Items()[lb.Index()]

	inner := l.width - 6
	if inner < 10 {
		inner = 10
	}

	var content strings.Builder
	content.WriteString(lightboxTitleStyle.Render(runewidth.Truncate(item.Label(), inner, "…")))
	content.WriteString("\n\n")

	// Image area placeholder; bytes are never decoded, the src is shown
	// underneath instead.
	for i := 0; i < 8; i++ {
		content.WriteString(lightboxArtStyle.Render(strings.Repeat("▒", inner)))
		content.WriteString("\n")
	}
	content.WriteString(lightboxSrcStyle.Render(runewidth.Truncate(item.Src, inner, "…")))
	content.WriteString("\n")

	if item.Caption != "" {
		content.WriteString("\n")
		content.WriteString(lightboxCaptionStyle.Render(wordwrap.String(item.Caption, inner)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	mid := inner - 28 // room left between the two affordances
	if mid < 9 {
		mid = 9
	}
	nav := lipgloss.JoinHorizontal(
		lipgloss.Center,
		affordanceStyle.Render("‹ Previous image"),
		lipgloss.Place(mid, 1, lipgloss.Center, lipgloss.Center, indicatorStyle.Render(lb.Indicator())),
		affordanceStyle.Render("Next image ›"),
	)
	content.WriteString(nav)
	content.WriteString("\n\n")
	content.WriteString(lightboxHintStyle.Render("[←/→] Navigate  [Esc] Close"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Primary).
		Padding(1, 2).
		Width(l.width)

	return borderStyle.Render(content.String())
}
