package ui

import (
	"strings"

	"galeria/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var keyDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var separator = " • "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState selects which key hints the bottom menu shows.
type MenuState int

const (
	StateBrowse MenuState = iota
	StateLightbox
	StateOverlay
)

// Menu is the bottom bar of key hints. The hints follow the app state: the
// browse view, the lightbox and the text overlays each advertise their own
// bindings.
type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState
	selectable    bool

	// keyDown is the key currently pressed, underlined as feedback. -1 when
	// none is.
	keyDown keys.KeyName
}

var browseMenuOptions = []keys.KeyName{
	keys.KeyUp, keys.KeyDown, keys.KeyActivate, keys.KeySelect,
	keys.KeyCopy, keys.KeySearch, keys.KeyReload, keys.KeyHelp, keys.KeyQuit,
}
var browseMenuOptionsNoSelect = []keys.KeyName{
	keys.KeyUp, keys.KeyDown, keys.KeyActivate,
	keys.KeySearch, keys.KeyReload, keys.KeyHelp, keys.KeyQuit,
}
var lightboxMenuOptions = []keys.KeyName{
	keys.KeyPrevImage, keys.KeyNextImage, keys.KeyEsc,
}
var overlayMenuOptions = []keys.KeyName{
	keys.KeyEsc,
}

// NewMenu creates the bottom menu. selectable controls whether selection
// hints are advertised.
func NewMenu(selectable bool) *Menu {
	return &Menu{
		options:    browseMenuOptions,
		selectable: selectable,
		keyDown:    -1,
	}
}

// Keydown underlines the hint for the pressed key.
func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

// ClearKeydown removes the underline.
func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly.
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateLightbox:
		m.options = lightboxMenuOptions
	case StateOverlay:
		m.options = overlayMenuOptions
	default:
		if m.selectable {
			m.options = browseMenuOptions
		} else {
			m.options = browseMenuOptionsNoSelect
		}
	}
}

// SetSize sets the width of the bar. The menu is centered within it.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	for i, k := range m.options {
		binding := keys.GlobalkeyBindings[k]

		localKeyStyle := keyStyle
		localDescStyle := keyDescStyle
		if m.keyDown == k {
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		s.WriteString(localKeyStyle.Render(binding.Help().Key))
		s.WriteString(" ")
		s.WriteString(localDescStyle.Render(binding.Help().Desc))

		if i != len(m.options)-1 {
			s.WriteString(sepStyle.Render(separator))
		}
	}

	centered := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centered)
}
