package app

import (
	"context"
	"strings"
	"time"

	"galeria/config"
	"galeria/gallery"
	"galeria/keys"
	"galeria/log"
	"galeria/source"
	"galeria/ui"
	"galeria/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpScreenSeenBit marks the first-run help screen in persisted state.
const helpScreenSeenBit uint32 = 1

// Run is the main entrypoint into the application.
func Run(ctx context.Context, src source.Source, cfg *config.Config, opts gallery.Options) error {
	p := tea.NewProgram(
		newHome(ctx, src, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateBrowse is the default state: cursor over the grid.
	stateBrowse state = iota
	// stateLightbox is the state when the lightbox dialog is open.
	stateLightbox
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// stateSearch is the state when the fuzzy search overlay is open.
	stateSearch
)

type albumLoadedMsg struct {
	album *source.Album
	err   error
}

type pageAppendedMsg struct {
	items []gallery.Item
}

type keyupMsg struct{}

type home struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config
	appState  *config.State

	// -- State --

	// state is the current discrete state of the application.
	state state
	// gallery is the interaction engine: items, selection, lightbox, load
	// trigger.
	gallery *gallery.Gallery
	// src produces the album; pager serves it page by page when infinite
	// scroll is on.
	src   source.Source
	pager *source.Pager
	// loadRequested is set by the load trigger during sentinel observation
	// and drained into a page append on the next update.
	loadRequested bool
	albumTitle    string

	// -- UI Components --

	// grid displays the populated gallery
	grid *ui.Grid
	// menu displays the bottom key hints
	menu *ui.Menu
	// global spinner instance, shown while loading
	spinner spinner.Model
	// lightboxOverlay draws the open lightbox
	lightboxOverlay *overlay.LightboxOverlay
	// helpOverlay displays the key bindings
	helpOverlay *overlay.HelpOverlay
	// searchOverlay fuzzy-filters items by title
	searchOverlay *overlay.SearchOverlay

	width, height int
}

func newHome(ctx context.Context, src source.Source, cfg *config.Config, opts gallery.Options) *home {
	appState := config.LoadState()

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		appState:  appState,
		state:     stateBrowse,
		src:       src,
		gallery:   gallery.New(opts),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		menu:      ui.NewMenu(opts.Selectable),
	}
	h.grid = ui.NewGrid(opts)
	h.grid.SetSelectedFunc(h.gallery.Selection().IsSelected)
	h.menu.SetState(ui.StateBrowse)

	h.gallery.OnSelect(func(items []gallery.Item) {
		log.InfoLog.Printf("selection changed: %d items", len(items))
	})
	h.gallery.OnItemClick(func(item gallery.Item, index int) {
		log.Debug("activated %s at %d", item.ID, index)
	})
	h.gallery.OnLoadMore(func() {
		h.loadRequested = true
	})

	// Show the help screen once on first run.
	if !appState.HasSeenHelpScreen(helpScreenSeenBit) {
		h.state = stateHelp
		h.helpOverlay = overlay.NewHelpOverlay()
		h.menu.SetState(ui.StateOverlay)
		appState.MarkHelpScreenSeen(helpScreenSeenBit)
		if err := config.SaveState(appState); err != nil {
			log.WarningLog.Printf("failed to save state: %v", err)
		}
	}

	return h
}

func (m *home) Init() tea.Cmd {
	m.gallery.SetLoading(true)
	return tea.Batch(m.spinner.Tick, m.loadAlbumCmd())
}

// loadAlbumCmd loads the album from the source off the update loop.
func (m *home) loadAlbumCmd() tea.Cmd {
	src := m.src
	ctx := m.ctx
	return func() tea.Msg {
		album, err := src.Load(ctx)
		return albumLoadedMsg{album: album, err: err}
	}
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case albumLoadedMsg:
		m.gallery.SetLoading(false)
		if msg.err != nil {
			log.ErrorLog.Printf("failed to load album: %v", msg.err)
			m.gallery.SetError(msg.err.Error())
			return m, nil
		}
		m.albumTitle = msg.album.Title
		if m.gallery.Options().Label == "" {
			m.grid.SetLabel(msg.album.Title)
		}

		pageSize := 0
		if m.gallery.Options().InfiniteScroll {
			pageSize = m.appConfig.PageSize
		}
		m.pager = source.NewPager(msg.album.Items, pageSize)
		m.gallery.ReplaceItems(m.pager.Next())
		m.grid.SetItems(m.gallery.Items())
		return m, m.observeSentinel()
	case pageAppendedMsg:
		m.gallery.AppendItems(msg.items)
		m.grid.RefreshItems(m.gallery.Items())
		if m.pager != nil && !m.pager.HasMore() {
			// Exhausted: release the trigger so the sentinel stops firing.
			m.gallery.Close()
		}
		return m, m.observeSentinel()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && m.state == stateBrowse {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.grid.ScrollUp()
			case tea.MouseButtonWheelDown:
				m.grid.ScrollDown()
			default:
				return m, nil
			}
			return m, m.observeSentinel()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHandleWindowSizeEvent sets the sizes of the components. The grid gets
// everything above the menu bar.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	menuHeight := 2
	m.grid.SetSize(msg.Width, msg.Height-menuHeight)
	m.menu.SetSize(msg.Width, menuHeight)

	overlayWidth := int(float32(msg.Width) * 0.6)
	if m.lightboxOverlay != nil {
		m.lightboxOverlay.SetWidth(overlayWidth)
	}
	if m.searchOverlay != nil {
		m.searchOverlay.SetWidth(overlayWidth)
	}
	if m.helpOverlay != nil {
		m.helpOverlay.SetWidth(overlayWidth)
	}
}

// observeSentinel feeds the sentinel's current visibility into the gallery's
// load trigger and, if that armed a load, serves the next page.
func (m *home) observeSentinel() tea.Cmd {
	m.gallery.ObserveSentinel(m.grid.SentinelVisible())
	if !m.loadRequested || m.pager == nil {
		return nil
	}
	m.loadRequested = false
	items := m.pager.Next()
	if len(items) == 0 {
		return nil
	}
	log.Debug("loading %d more items (%d served)", len(items), m.pager.Served())
	return func() tea.Msg {
		return pageAppendedMsg{items: items}
	}
}

// keydownCallback briefly underlines the pressed key's hint in the menu.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(250 * time.Millisecond):
		}
		return keyupMsg{}
	}
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("state=%d key=%s", m.state, msg.String())

	switch m.state {
	case stateHelp:
		if m.helpOverlay.HandleKeyPress(msg) {
			m.helpOverlay = nil
			m.state = stateBrowse
			m.menu.SetState(ui.StateBrowse)
		}
		return m, nil
	case stateSearch:
		if m.searchOverlay.HandleKeyPress(msg) {
			if idx := m.searchOverlay.Selected; idx >= 0 {
				m.grid.SetCursor(idx)
			}
			m.searchOverlay = nil
			m.state = stateBrowse
			m.menu.SetState(ui.StateBrowse)
			return m, m.observeSentinel()
		}
		return m, nil
	case stateLightbox:
		if m.lightboxOverlay.HandleKeyPress(msg) {
			// Keep the browse cursor on the image that was showing.
			m.grid.SetCursor(m.gallery.Lightbox().Index())
			m.lightboxOverlay = nil
			m.state = stateBrowse
			m.menu.SetState(ui.StateBrowse)
		}
		return m, nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	highlightCmd := m.keydownCallback(name)

	switch name {
	case keys.KeyUp:
		m.grid.MoveUp()
		return m, tea.Batch(highlightCmd, m.observeSentinel())
	case keys.KeyDown:
		m.grid.MoveDown()
		return m, tea.Batch(highlightCmd, m.observeSentinel())
	case keys.KeyLeft:
		m.grid.MoveLeft()
		return m, tea.Batch(highlightCmd, m.observeSentinel())
	case keys.KeyRight:
		m.grid.MoveRight()
		return m, tea.Batch(highlightCmd, m.observeSentinel())
	case keys.KeyActivate, keys.KeySelect:
		// Enter and Space are both activations, same as a pointer click.
		m.gallery.Activate(m.grid.Cursor())
		if m.gallery.Lightbox().IsOpen() {
			m.lightboxOverlay = overlay.NewLightboxOverlay(m.gallery)
			m.lightboxOverlay.SetWidth(int(float32(m.width) * 0.6))
			m.state = stateLightbox
			m.menu.SetState(ui.StateLightbox)
		}
		return m, highlightCmd
	case keys.KeyClear:
		m.gallery.Selection().Clear()
		return m, highlightCmd
	case keys.KeyCopy:
		m.copySelection()
		return m, highlightCmd
	case keys.KeySearch:
		if m.gallery.Branch() == gallery.BranchPopulated {
			m.searchOverlay = overlay.NewSearchOverlay(m.gallery.Items())
			m.searchOverlay.SetWidth(int(float32(m.width) * 0.6))
			m.state = stateSearch
			m.menu.SetState(ui.StateOverlay)
		}
		return m, highlightCmd
	case keys.KeyReload:
		m.gallery.SetError("")
		m.gallery.SetLoading(true)
		m.pager = nil
		return m, tea.Batch(highlightCmd, m.loadAlbumCmd())
	case keys.KeyHelp:
		m.helpOverlay = overlay.NewHelpOverlay()
		m.helpOverlay.SetWidth(int(float32(m.width) * 0.6))
		m.state = stateHelp
		m.menu.SetState(ui.StateOverlay)
		return m, highlightCmd
	case keys.KeyQuit:
		return m.handleQuit()
	}
	return m, nil
}

// copySelection copies the selected items' source paths to the clipboard,
// falling back to the focused item when nothing is selected.
func (m *home) copySelection() {
	items := m.gallery.Selection().Selected()
	if len(items) == 0 {
		all := m.gallery.Items()
		cursor := m.grid.Cursor()
		if cursor >= len(all) {
			return
		}
		items = []gallery.Item{all[cursor]}
	}

	paths := make([]string, len(items))
	for i, item := range items {
		paths[i] = item.Src
	}
	if err := clipboard.WriteAll(strings.Join(paths, "\n")); err != nil {
		log.WarningLog.Printf("failed to copy to clipboard: %v", err)
		return
	}
	log.InfoLog.Printf("copied %d paths to clipboard", len(paths))
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.gallery.Close()
	if err := config.SaveState(m.appState); err != nil {
		log.WarningLog.Printf("failed to save state: %v", err)
	}
	return m, tea.Quit
}

func (m *home) View() string {
	contentHeight := m.height - 2

	var content string
	switch m.gallery.Branch() {
	case gallery.BranchLoading:
		content = ui.LoadingView(m.width, contentHeight, m.spinner.View())
	case gallery.BranchError:
		content = ui.ErrorView(m.width, contentHeight, m.gallery.Error())
	case gallery.BranchEmpty:
		content = ui.EmptyView(m.width, contentHeight, m.albumTitle)
	default:
		content = m.grid.String()
	}

	// Overlays replace the content area while open.
	switch m.state {
	case stateLightbox:
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.lightboxOverlay.Render())
	case stateHelp:
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.helpOverlay.Render())
	case stateSearch:
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.searchOverlay.Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.menu.String())
}
