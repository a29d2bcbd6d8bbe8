package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wemarz/cinelux/internal/catalog"
	"github.com/wemarz/cinelux/internal/chat"
	"github.com/wemarz/cinelux/internal/config"
	"github.com/wemarz/cinelux/internal/library"
	"github.com/wemarz/cinelux/internal/nav"
	"github.com/wemarz/cinelux/internal/scene"
	"github.com/wemarz/cinelux/internal/watcher"
)

const narrowWidth = 100

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type chatReplyMsg struct {
	reply string
	err   error
}

// historyLog records pushed navigation entries so the status bar can
// show how deep the user has wandered.
type historyLog struct {
	depth int
}

func (h *historyLog) Pushed(v nav.View, title string) {
	h.depth++
}

// Model is the root bubbletea model for the CineLux browser.
type Model struct {
	cat *catalog.Catalog
	lib *library.Library
	cfg config.Config

	cam       *scene.Camera
	navigator *scene.Navigator
	router    *nav.Router
	history   *historyLog

	session *chat.Session

	grid      MovieGrid
	chatPane  ChatPane
	searchBar SearchBar
	relCursor int
	lastView  nav.View

	status      string
	confirmQuit bool

	width  int
	height int
	ready  bool
	frame  int
}

func NewModel(cat *catalog.Catalog, lib *library.Library, cfg config.Config, chatClient *chat.Client) Model {
	cam := &scene.Camera{Position: scene.Vec3{X: 0, Y: 5, Z: 30}}
	objects := make([]*scene.Object, 0, len(cat.Categories()))
	for _, c := range cat.Categories() {
		objects = append(objects, &scene.Object{
			ID:        c.ID,
			Position:  c.Position,
			Color:     c.Color,
			BaseScale: c.Scale,
		})
	}
	navigator := scene.NewNavigator(cam, objects)

	hist := &historyLog{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	router := nav.NewRouter(cat, lib, rng, hist)
	if obj := navigator.Focused(); obj != nil {
		router.SetCategory(obj.ID)
	}

	return Model{
		cat:       cat,
		lib:       lib,
		cfg:       cfg,
		cam:       cam,
		navigator: navigator,
		router:    router,
		history:   hist,
		session:   chat.NewSession(chatClient),
		grid:      NewMovieGrid(),
		chatPane:  NewChatPane(),
		searchBar: NewSearchBar(),
		lastView:  nav.ViewNavigator,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watcher.Watch(m.lib.Path()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.navigator.NarrowViewport = msg.Width < narrowWidth
		m.grid.SetSize(msg.Width-6, m.bodyHeight()-2)
		m.searchBar.SetWidth(msg.Width - 4)
		cw := msg.Width - 8
		if cw > 68 {
			cw = 68
		}
		ch := msg.Height - 6
		if ch > 22 {
			ch = 22
		}
		m.chatPane.SetSize(cw, ch)
		return m, nil

	case tickMsg:
		m.frame++
		if m.router.Current() == nav.ViewNavigator {
			m.navigator.Step()
		}
		m.cam.Step(time.Now())
		m.syncView()
		return m, tickCmd()

	case watcher.LibraryChangedMsg:
		m.lib.Reload()
		m.refreshContent()
		return m, watcher.Watch(m.lib.Path())

	case chatReplyMsg:
		m.chatPane.FinishSend(msg.reply, msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmQuit {
		switch msg.String() {
		case "y", "enter":
			return m, tea.Quit
		default:
			m.confirmQuit = false
		}
		return m, nil
	}

	if m.searchBar.IsActive() {
		return m.handleSearchKey(msg)
	}
	if m.chatPane.IsOpen() {
		return m.handleChatKey(msg)
	}
	if m.router.Detail() != nil {
		return m.handlePopupKey(msg)
	}

	m.status = ""
	locale := m.lib.Locale()

	switch msg.String() {
	case "q":
		m.confirmQuit = true

	case "t":
		m.cam.CancelTransition()
		m.router.Home()
		m.relCursor = 0
		m.syncView()

	case "L":
		next := "my"
		if locale == "my" {
			next = "en"
		}
		if err := m.lib.SetLocale(next); err != nil {
			m.status = err.Error()
		}

	case "esc":
		m.goBack()

	case "f":
		if m.router.Current() != nav.ViewPlayer {
			m.router.ShowList(library.Favorites)
			m.syncView()
		}
	case "w":
		if m.router.Current() != nav.ViewPlayer {
			m.router.ShowList(library.WatchLater)
			m.syncView()
		}

	case "/":
		if m.router.Current().SearchHeader() {
			m.searchBar.Open("title...")
			return m, textinput.Blink
		}

	case "c":
		if m.router.Current().ChatEligible() {
			m.chatPane.Open(txtChatPrompt.For(locale))
			return m, textinput.Blink
		}

	case "left", "h":
		if m.router.Current() == nav.ViewNavigator {
			m.navigator.Prev()
			if obj := m.navigator.Focused(); obj != nil {
				m.router.SetCategory(obj.ID)
			}
		}
	case "right", "l":
		if m.router.Current() == nav.ViewNavigator {
			m.navigator.Next()
			if obj := m.navigator.Focused(); obj != nil {
				m.router.SetCategory(obj.ID)
			}
		}

	case "up", "k":
		switch m.router.Current() {
		case nav.ViewGrid, nav.ViewList, nav.ViewSearchResults:
			m.grid.Up()
		case nav.ViewPlayer:
			if m.relCursor > 0 {
				m.relCursor--
			}
		}
	case "down", "j":
		switch m.router.Current() {
		case nav.ViewGrid, nav.ViewList, nav.ViewSearchResults:
			m.grid.Down()
		case nav.ViewPlayer:
			if p := m.router.Player(); p != nil && m.relCursor < len(p.Related)-1 {
				m.relCursor++
			}
		}

	case "enter":
		switch m.router.Current() {
		case nav.ViewNavigator:
			if obj := m.navigator.Focused(); obj != nil {
				id := obj.ID
				router := m.router
				// A second press while the camera is already flying is ignored.
				_ = m.cam.StartTransition(obj, time.Now(), func() {
					router.ShowGrid(id)
				})
			}
		case nav.ViewGrid, nav.ViewList, nav.ViewSearchResults:
			if sel := m.grid.Selected(); sel != nil {
				m.router.ShowDetail(*sel)
			}
		case nav.ViewPlayer:
			if p := m.router.Player(); p != nil && m.relCursor < len(p.Related) {
				m.router.ShowDetail(p.Related[m.relCursor])
			}
		}
	}
	return m, nil
}

func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	detail := m.router.Detail()
	switch msg.String() {
	case "esc":
		m.router.HideDetail()
	case "enter", "p":
		m.router.ShowPlayer(*detail, false)
		m.relCursor = 0
		m.syncView()
	case "f":
		if _, err := m.lib.Toggle(library.Favorites, *detail); err != nil {
			m.status = err.Error()
		}
		m.refreshContent()
	case "w":
		if _, err := m.lib.Toggle(library.WatchLater, *detail); err != nil {
			m.status = err.Error()
		}
		m.refreshContent()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchBar.Close()
	case "enter":
		query := m.searchBar.Value()
		m.searchBar.Close()
		m.router.PerformSearch(query)
		m.syncView()
	default:
		return m, m.searchBar.UpdateInput(msg)
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatPane.Close()
	case "enter":
		if prompt := m.chatPane.BeginSend(); prompt != "" {
			return m, m.sendChatCmd(prompt)
		}
	default:
		return m, m.chatPane.UpdateInput(msg)
	}
	return m, nil
}

func (m Model) sendChatCmd(prompt string) tea.Cmd {
	session := m.session
	locale := m.lib.Locale()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		reply, err := session.Send(ctx, prompt, locale)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *Model) goBack() {
	if !m.router.Back() {
		if m.router.Current() != nav.ViewNavigator {
			m.router.SwitchView(nav.ViewNavigator, true)
		}
	}
	m.relCursor = 0
	m.refreshContent()
	m.lastView = m.router.Current()
}

// syncView reloads view-local state after the router moved to a new view,
// which can also happen outside a keypress when a camera transition lands.
func (m *Model) syncView() {
	cur := m.router.Current()
	if cur == m.lastView {
		return
	}
	m.lastView = cur
	m.relCursor = 0
	m.refreshContent()
}

func (m *Model) refreshContent() {
	switch m.router.Current() {
	case nav.ViewGrid:
		m.grid.SetMovies(m.router.Grid().Movies)
	case nav.ViewList:
		// Re-resolve: list membership may have changed under us.
		m.router.ShowList(m.router.List().Name)
		m.grid.SetMovies(m.router.List().Movies)
	case nav.ViewSearchResults:
		m.grid.SetMovies(m.router.SearchResults().Movies)
	}
}

func (m Model) bodyHeight() int {
	h := m.height - 2
	if m.searchBar.IsActive() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	if m.searchBar.IsActive() {
		b.WriteString(" " + m.searchBar.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	out := b.String()
	if m.router.Detail() != nil {
		out = overlayCenter(out, m.renderDetailPopup(), m.width, m.height)
	}
	if m.chatPane.IsOpen() {
		out = overlayCenter(out, m.chatPane.View(m.frame), m.width, m.height)
	}
	if m.confirmQuit {
		modal := RenderPanel("QUIT", "\n  Leave CineLux? [y/n]\n", 30, 5, true)
		out = overlayCenter(out, modal, m.width, m.height)
	}
	return out
}

func (m Model) renderHeader() string {
	locale := m.lib.Locale()
	title := TitleStyle.Render(" ✦ CINELUX ")
	view := SubtleStyle.Render(strings.ToUpper(m.router.Current().String()))

	fav := len(m.lib.Movies(library.Favorites))
	wl := len(m.lib.Movies(library.WatchLater))
	counts := DimStyle.Render(fmt.Sprintf("♥ %d  ⌚ %d", fav, wl))
	badge := SubtleStyle.Render("[" + strings.ToUpper(locale) + "]")
	clock := DimStyle.Render(time.Now().Format("15:04"))

	left := title + " " + view + "  " + counts + "  " + badge
	pad := m.width - visibleLen(left) - visibleLen(clock) - 1
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + clock
}

func (m Model) renderBody() string {
	w := m.width
	h := m.bodyHeight()
	locale := m.lib.Locale()

	switch m.router.Current() {
	case nav.ViewNavigator:
		return m.renderNavigator(w, h)

	case nav.ViewGrid:
		title := "MOVIES"
		if c, ok := m.cat.Category(m.router.Grid().CategoryID); ok {
			title = strings.ToUpper(c.Name.For(locale))
		}
		return RenderPanel(title, m.grid.View(""), w-2, h, true)

	case nav.ViewList:
		name := m.router.List().Name
		title := txtFavorites.For(locale)
		if name == library.WatchLater {
			title = txtWatchLater.For(locale)
		}
		return RenderPanel(strings.ToUpper(title), m.grid.View(txtListEmpty.For(locale)), w-2, h, true)

	case nav.ViewSearchResults:
		title := txtResultsFor(locale, m.router.SearchResults().Query)
		return RenderPanel(title, m.grid.View(txtNoResults.For(locale)), w-2, h, true)

	case nav.ViewPlayer:
		return m.renderPlayer(w, h)
	}
	return ""
}

func (m Model) renderStatusBar() string {
	var hints []string
	switch m.router.Current() {
	case nav.ViewNavigator:
		hints = append(hints, "←/→ browse", "enter open", "f favs", "w later", "t home")
	case nav.ViewGrid, nav.ViewList, nav.ViewSearchResults:
		hints = append(hints, "↑/↓ move", "enter details", "/ search", "esc back")
	case nav.ViewPlayer:
		hints = append(hints, "↑/↓ related", "enter details", "esc back")
	}
	if m.router.Current().ChatEligible() {
		hints = append(hints, "c ai")
	}
	hints = append(hints, "L lang", "q quit")

	left := " " + strings.Join(hints, "  ·  ")

	var flags []string
	if m.cam.Transitioning() {
		flags = append(flags, "TRANSIT")
	}
	if m.chatPane.IsWaiting() {
		flags = append(flags, "AI…")
	}
	if m.status != "" {
		flags = append(flags, m.status)
	}
	flags = append(flags, fmt.Sprintf("hist %d", m.history.depth))
	right := strings.Join(flags, "  ") + " "

	pad := m.width - visibleLen(left) - visibleLen(right)
	if pad < 1 {
		pad = 1
	}
	bar := left + strings.Repeat(" ", pad) + right
	return lipgloss.NewStyle().
		Background(ColorBarBg).
		Foreground(ColorBarText).
		Render(truncateToWidth(bar, m.width))
}
