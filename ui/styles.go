package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette shared by the gallery views. Statuses pair a color
// with an icon so they stay readable without color.

var (
	// StatusError indicates load failures.
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// StatusRunning indicates a load in progress.
	StatusRunning = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// Primary is the accent/focus color.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color.
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color.
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for captions and labels.
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSelected marks selected cells.
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}
)

const (
	IconSelected = "●"
	IconError    = "×"
	IconEmpty    = "∅"
)

var mainTitleStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230"))

var countStyle = lipgloss.NewStyle().Foreground(TextMuted)

var selectionTagStyle = lipgloss.NewStyle().
	Background(BackgroundSelected).
	Foreground(lipgloss.Color("#1a1a1a"))

// CardStyle is the border box around an unfocused gallery cell.
func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}

// FocusedCardStyle is the border box around the focused cell.
func FocusedCardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
}

// StatusBoxStyle is the bordered box used by the loading, error and empty
// views.
func StatusBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}
