package keys

import "github.com/charmbracelet/bubbles/key"

// KeyName names an action bound to one or more keys. The bottom menu renders
// bindings by name, and the app routes key presses through GlobalKeyStringsMap.
type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyActivate
	KeySelect
	KeyClear
	KeyCopy
	KeySearch
	KeyReload
	KeyHelp
	KeyQuit
	KeyEsc

	// Lightbox navigation.
	KeyNextImage
	KeyPrevImage
)

// GlobalKeyStringsMap maps raw key strings to key names for routing.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"left":   KeyLeft,
	"h":      KeyLeft,
	"right":  KeyRight,
	"l":      KeyRight,
	"enter":  KeyActivate,
	" ":      KeySelect,
	"c":      KeyClear,
	"y":      KeyCopy,
	"/":      KeySearch,
	"r":      KeyReload,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
	"esc":    KeyEsc,
	"n":      KeyNextImage,
	"p":      KeyPrevImage,
}

// GlobalkeyBindings provides the help text shown in the menu for each action.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyActivate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	KeySelect: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	KeyClear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear selection"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy paths"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyNextImage: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/n", "next image"),
	),
	KeyPrevImage: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/p", "previous image"),
	),
}
