package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// The loading, error and empty branches each render a single centered status
// box with a heading and a message. Exactly one of these (or the grid) is on
// screen at any time.

var statusHeadingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

var statusMessageStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

var errorHeadingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(StatusError)

// LoadingView renders the loading placeholder. spin is the current spinner
// frame.
func LoadingView(width, height int, spin string) string {
	content := statusHeadingStyle.Render("Loading gallery") + "\n\n" +
		spin + " " + statusMessageStyle.Render("Fetching images…")
	return placeStatus(width, height, StatusBoxStyle().Render(content))
}

// ErrorView renders the error placeholder. The message is caller-reported and
// shown verbatim; retrying is the caller's business.
func ErrorView(width, height int, msg string) string {
	box := StatusBoxStyle().BorderForeground(StatusError)
	content := errorHeadingStyle.Render(IconError+" Gallery error") + "\n\n" +
		statusMessageStyle.Render(msg)
	return placeStatus(width, height, box.Render(content))
}

// EmptyView renders the empty placeholder shown when a gallery has no items.
func EmptyView(width, height int, label string) string {
	if label == "" {
		label = "This gallery"
	}
	content := statusHeadingStyle.Render(IconEmpty+" No images") + "\n\n" +
		statusMessageStyle.Render(label+" is empty.")
	return placeStatus(width, height, StatusBoxStyle().Render(content))
}

func placeStatus(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
