package overlay

import (
	"fmt"
	"strings"

	"galeria/gallery"
	"galeria/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

const maxSearchResults = 8

// SearchOverlay fuzzy-filters the gallery's items by title. Enter jumps the
// browse cursor to the highlighted match; Esc cancels.
type SearchOverlay struct {
	Dismissed bool
	// Selected is the item index to focus after dismissal, or -1 when the
	// search was cancelled.
	Selected int

	items   []gallery.Item
	input   textinput.Model
	matches fuzzy.Matches
	cursor  int
	width   int
}

// itemLabels adapts the item collection to fuzzy.Source.
type itemLabels []gallery.Item

func (s itemLabels) String(i int) string { return s[i].Label() }
func (s itemLabels) Len() int            { return len(s) }

// NewSearchOverlay creates a search overlay over the given items.
func NewSearchOverlay(items []gallery.Item) *SearchOverlay {
	input := textinput.New()
	input.Placeholder = "Search images"
	input.Focus()

	return &SearchOverlay{
		Selected: -1,
		items:    items,
		input:    input,
		width:    50,
	}
}

// SetWidth sets the width of the overlay.
func (s *SearchOverlay) SetWidth(width int) {
	s.width = width
}

// HandleKeyPress processes a key press. Returns true when the overlay should
// close; Selected then holds the chosen item index, or -1 on cancel.
func (s *SearchOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "ctrl+c":
		s.Dismissed = true
		return true
	case "enter":
		if s.cursor < len(s.matches) {
			s.Selected = s.matches[s.cursor].Index
		}
		s.Dismissed = true
		return true
	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return false
	case "down", "ctrl+n":
		if s.cursor < len(s.matches)-1 {
			s.cursor++
		}
		return false
	}

	s.input, _ = s.input.Update(msg)
	s.matches = fuzzy.FindFrom(s.input.Value(), itemLabels(s.items))
	if len(s.matches) > maxSearchResults {
		s.matches = s.matches[:maxSearchResults]
	}
	if s.cursor >= len(s.matches) {
		s.cursor = max(0, len(s.matches)-1)
	}
	return false
}

var searchTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF"))

var matchStyle = lipgloss.NewStyle().Foreground(ui.TextSecondary)

var matchCursorStyle = lipgloss.NewStyle().Foreground(ui.Primary).Bold(true)

var matchRuneStyle = lipgloss.NewStyle().Foreground(ui.Primary).Underline(true)

var searchHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

// Render renders the search overlay.
func (s *SearchOverlay) Render() string {
	var content strings.Builder
	content.WriteString(searchTitleStyle.Render("Search"))
	content.WriteString("\n\n")
	content.WriteString(s.input.View())
	content.WriteString("\n\n")

	if s.input.Value() == "" {
		content.WriteString(matchStyle.Render(fmt.Sprintf("%d images", len(s.items))))
		content.WriteString("\n")
	} else if len(s.matches) == 0 {
		content.WriteString(matchStyle.Render("No matches"))
		content.WriteString("\n")
	} else {
		inner := s.width - 8
		for i, match := range s.matches {
			prefix := "  "
			if i == s.cursor {
				prefix = matchCursorStyle.Render("> ")
			}
			content.WriteString(prefix)
			content.WriteString(highlightMatch(match, inner))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(searchHintStyle.Render("[Enter] Go to image  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Primary).
		Padding(1, 2).
		Width(s.width)

	return borderStyle.Render(content.String())
}

// highlightMatch renders a match with the matched runes underlined.
func highlightMatch(match fuzzy.Match, width int) string {
	text := runewidth.Truncate(match.Str, width, "…")
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range text {
		if matched[i] {
			b.WriteString(matchRuneStyle.Render(string(r)))
		} else {
			b.WriteString(matchStyle.Render(string(r)))
		}
	}
	return b.String()
}
