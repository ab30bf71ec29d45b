package overlay

import (
	"strings"

	"galeria/keys"
	"galeria/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay lists the key bindings. Any key dismisses it.
type HelpOverlay struct {
	Dismissed bool
	width     int
}

// NewHelpOverlay creates a help overlay.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{width: 50}
}

// SetWidth sets the width of the overlay.
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
}

// HandleKeyPress dismisses the overlay on any key.
func (h *HelpOverlay) HandleKeyPress(tea.KeyMsg) bool {
	h.Dismissed = true
	return true
}

var helpTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF"))

var helpKeyStyle = lipgloss.NewStyle().Foreground(ui.Primary)

var helpDescStyle = lipgloss.NewStyle().Foreground(ui.TextSecondary)

var helpSections = []struct {
	title string
	names []keys.KeyName
}{
	{"Browse", []keys.KeyName{keys.KeyUp, keys.KeyDown, keys.KeyLeft, keys.KeyRight}},
	{"Actions", []keys.KeyName{keys.KeyActivate, keys.KeySelect, keys.KeyClear, keys.KeyCopy}},
	{"Lightbox", []keys.KeyName{keys.KeyNextImage, keys.KeyPrevImage, keys.KeyEsc}},
	{"System", []keys.KeyName{keys.KeySearch, keys.KeyReload, keys.KeyHelp, keys.KeyQuit}},
}

// Render renders the help overlay.
func (h *HelpOverlay) Render() string {
	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Keyboard shortcuts"))
	content.WriteString("\n")

	for _, section := range helpSections {
		content.WriteString("\n")
		content.WriteString(helpDescStyle.Render(section.title))
		content.WriteString("\n")
		for _, name := range section.names {
			binding := keys.GlobalkeyBindings[name]
			content.WriteString("  ")
			content.WriteString(helpKeyStyle.Render(padRight(binding.Help().Key, 8)))
			content.WriteString(helpDescStyle.Render(binding.Help().Desc))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(helpDescStyle.Render("Press any key to close"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Border).
		Padding(1, 2).
		Width(h.width)

	return borderStyle.Render(content.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
