package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/components"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// celebrationDoneMsg hides the celebration armed with the same generation.
// Ticks from an earlier arming carry a stale generation and are ignored.
type celebrationDoneMsg struct {
	gen int
}

// bulkAction identifies which bulk operation a confirm dialog guards.
type bulkAction int

const (
	actionNone bulkAction = iota
	actionReset
	actionCompleteAll
)

// BoardOptions tunes the board model. Zero values pick the defaults.
type BoardOptions struct {
	Columns     int           // 0 = fit terminal width
	Celebration time.Duration // visible window, default 3s
	Logger      *zap.Logger
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// BoardModel is the full-screen checklist board. It owns the transient UI
// state (hover, celebration window, overlays) and drives the store; it never
// touches storage directly.
type BoardModel struct {
	store *checklist.Store
	log   *zap.Logger
	st    styles.Board

	// Transient UI state
	hovered        int // -1 when the pointer is off the grid
	celebrating    bool
	celebrationGen int
	celebrationFor time.Duration
	confetti       spinner.Model

	// Overlays
	confirm   *components.ConfirmDialog
	pending   bulkAction
	jumping   bool
	jumpInput textinput.Model
	showHelp  bool
	helpText  string
	flash     string

	// Layout
	grid        viewport.Model
	columnLimit int
	columns     int
	gridTop     int
	width       int
	height      int
	ready       bool
	quitting    bool
}

// NewBoardModel wraps store. The store's observers (persistence) fire on
// every committed change made through the board.
func NewBoardModel(store *checklist.Store, opts BoardOptions) BoardModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dur := opts.Celebration
	if dur <= 0 {
		dur = 3 * time.Second
	}

	ti := textinput.New()
	ti.Placeholder = "1-1000"
	ti.CharLimit = 4
	ti.Width = 6
	ti.Prompt = "Jump to sale # "

	return BoardModel{
		store:          store,
		log:            log.Named("board"),
		st:             styles.NewBoard(styles.PaletteFor(store.DarkMode())),
		hovered:        -1,
		celebrationFor: dur,
		confetti:       components.NewConfettiSpinner(),
		jumpInput:      ti,
		grid:           viewport.New(80, 20),
		columnLimit:    opts.Columns,
		columns:        components.ColumnsFor(80, opts.Columns),
	}
}

// Hovered returns the hovered index, if any.
func (m BoardModel) Hovered() (int, bool) {
	return m.hovered, m.hovered >= 0
}

// Celebrating reports whether the celebration banner is visible.
func (m BoardModel) Celebrating() bool {
	return m.celebrating
}

// Columns is the current grid width in cells.
func (m BoardModel) Columns() int {
	return m.columns
}

// ---------------------------------------------------------------------------
// Bubble Tea interface
// ---------------------------------------------------------------------------

// Init is called when the program starts.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles window resize, keyboard, mouse and timer messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.reflow()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case celebrationDoneMsg:
		if msg.gen == m.celebrationGen {
			m.celebrating = false
		}
		return m, nil

	case spinner.TickMsg:
		if m.celebrating {
			var cmd tea.Cmd
			m.confetti, cmd = m.confetti.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.jumping {
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Input handling
// ---------------------------------------------------------------------------

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.confirm != nil:
		return m.handleConfirmKey(msg)
	case m.jumping:
		return m.handleJumpKey(msg)
	case m.showHelp:
		m.showHelp = false
		return m, nil
	}

	m.flash = ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveHover(-m.columns)
	case "down", "j":
		m.moveHover(m.columns)
	case "left", "h":
		m.moveHover(-1)
	case "right", "l":
		m.moveHover(1)
	case "pgup":
		m.moveHover(-m.columns * max(m.grid.Height, 1))
	case "pgdown":
		m.moveHover(m.columns * max(m.grid.Height, 1))
	case "home":
		m.setHover(0)
	case "end":
		m.setHover(checklist.TotalItems - 1)
	case "esc":
		m.hovered = -1
		m.refreshGrid()
	case " ", "enter", "x":
		if m.hovered >= 0 {
			cmd := m.toggle(m.hovered)
			return m, cmd
		}
	case "R":
		m.openConfirm(actionReset)
	case "A":
		m.openConfirm(actionCompleteAll)
	case "t":
		m.store.ToggleTheme()
		m.st = styles.NewBoard(styles.PaletteFor(m.store.DarkMode()))
		m.log.Info("theme changed", zap.Bool("dark", m.store.DarkMode()))
		m.refreshGrid()
	case "g", "/":
		m.jumping = true
		m.jumpInput.SetValue("")
		cmd := m.jumpInput.Focus()
		return m, cmd
	case "?":
		m.showHelp = true
		m.helpText = renderMarkdown(helpMarkdown, m.helpWidth(), m.store.DarkMode())
	}
	return m, nil
}

func (m BoardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, _ := m.confirm.Update(msg)
	if !d.Done {
		m.confirm = &d
		return m, nil
	}

	action := m.pending
	m.confirm = nil
	m.pending = actionNone
	if !d.Confirmed {
		return m, nil
	}

	var cmd tea.Cmd
	switch action {
	case actionReset:
		cmd = m.reset()
	case actionCompleteAll:
		cmd = m.completeAll()
	}
	return m, cmd
}

func (m BoardModel) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		m.jumping = false
		m.jumpInput.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err != nil {
			m.flash = "Not a number: " + m.jumpInput.Value()
			return m, nil
		}
		idx, err := checklist.IndexForItem(n)
		if err != nil {
			m.flash = err.Error()
			return m, nil
		}
		m.setHover(idx)
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// handleMouse maps pointer motion to hover, clicks to toggles and the wheel
// to scrolling. Motion outside the grid clears the hover.
func (m BoardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil || m.jumping || m.showHelp {
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	idx, ok := m.cellAtScreen(msg.X, msg.Y)
	if !ok {
		if m.hovered >= 0 {
			m.hovered = -1
			m.refreshGrid()
		}
		return m, nil
	}

	if m.hovered != idx {
		m.hovered = idx
		m.refreshGrid()
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmd := m.toggle(idx)
		return m, cmd
	}
	return m, nil
}

// cellAtScreen converts terminal coordinates to an item index.
func (m BoardModel) cellAtScreen(x, y int) (int, bool) {
	if y < m.gridTop || y >= m.gridTop+m.grid.Height {
		return 0, false
	}
	row := y - m.gridTop + m.grid.YOffset
	return m.gridComponent().CellAt(x, row)
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

func (m *BoardModel) toggle(index int) tea.Cmd {
	out := m.store.Toggle(index)
	m.log.Debug("toggled",
		zap.Int("item", index+1),
		zap.Bool("checked", m.store.Checklist().Checked(index)),
	)
	m.refreshGrid()
	if out.Celebrate {
		return m.celebrate()
	}
	return nil
}

func (m *BoardModel) reset() tea.Cmd {
	m.store.Reset()
	m.log.Info("progress reset")
	m.refreshGrid()
	return nil
}

func (m *BoardModel) completeAll() tea.Cmd {
	out := m.store.CompleteAll()
	m.log.Info("all items completed")
	m.refreshGrid()
	if out.Celebrate {
		return m.celebrate()
	}
	return nil
}

// celebrate (re)arms the celebration window. Any pending hide from an
// earlier arming is superseded by bumping the generation.
func (m *BoardModel) celebrate() tea.Cmd {
	m.celebrationGen++
	m.celebrating = true
	gen := m.celebrationGen
	m.log.Info("milestone reached", zap.Int("completed", m.store.Metrics().Completed))

	hide := tea.Tick(m.celebrationFor, func(time.Time) tea.Msg {
		return celebrationDoneMsg{gen: gen}
	})
	return tea.Batch(hide, m.confetti.Tick)
}

func (m *BoardModel) openConfirm(action bulkAction) {
	var d components.ConfirmDialog
	switch action {
	case actionReset:
		d = components.NewConfirmDialog("Reset Progress", "Uncheck all 1000 sales?", m.st)
	case actionCompleteAll:
		d = components.NewConfirmDialog("Complete All", "Mark all 1000 sales as done?", m.st)
	default:
		return
	}
	m.confirm = &d
	m.pending = action
}

// ---------------------------------------------------------------------------
// Hover & layout
// ---------------------------------------------------------------------------

func (m *BoardModel) moveHover(delta int) {
	if m.hovered < 0 {
		m.setHover(0)
		return
	}
	next := m.hovered + delta
	if next < 0 {
		next = 0
	}
	if next >= checklist.TotalItems {
		next = checklist.TotalItems - 1
	}
	m.setHover(next)
}

// setHover moves the hover and scrolls the grid so it stays visible.
func (m *BoardModel) setHover(index int) {
	m.hovered = index
	m.refreshGrid()

	row := m.gridComponent().RowOf(index)
	if row < m.grid.YOffset {
		m.grid.SetYOffset(row)
	} else if h := m.grid.Height; h > 0 && row >= m.grid.YOffset+h {
		m.grid.SetYOffset(row - h + 1)
	}
}

func (m BoardModel) gridComponent() components.Grid {
	return components.Grid{
		Items:   m.store.Checklist().Items(),
		Hovered: m.hovered,
		Columns: m.columns,
		Styles:  m.st,
	}
}

func (m *BoardModel) refreshGrid() {
	m.grid.SetContent(m.gridComponent().Render())
}

// reflow recomputes column count and viewport size after a resize.
func (m *BoardModel) reflow() {
	m.columns = components.ColumnsFor(m.width, m.columnLimit)

	m.gridTop = lipgloss.Height(m.renderHeader())
	gridH := m.height - m.gridTop - 2 // status line + footer
	if gridH < 3 {
		gridH = 3
	}
	m.grid.Width = m.width
	m.grid.Height = gridH
	m.refreshGrid()

	if m.hovered >= 0 {
		m.setHover(m.hovered)
	}
}

func (m BoardModel) helpWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}
