package models

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/storage"
	"github.com/Dallionking/milestone/internal/tui/components"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func newTestBoard(t *testing.T, items []bool) (BoardModel, *storage.Bridge) {
	t.Helper()
	kv := storage.NewMemory()
	bridge := storage.NewBridge(kv, zaptest.NewLogger(t))
	if items != nil {
		require.NoError(t, bridge.SaveChecklist(items))
	}
	store := bridge.OpenStore(false)

	m := NewBoardModel(store, BoardOptions{Logger: zaptest.NewLogger(t)})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, bridge
}

func send(t *testing.T, m BoardModel, msg tea.Msg) BoardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(BoardModel)
}

func sendCmd(t *testing.T, m BoardModel, msg tea.Msg) (BoardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(BoardModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func firstN(n int) []bool {
	items := make([]bool, n)
	for i := range items {
		items[i] = true
	}
	return items
}

func TestViewBeforeResize(t *testing.T) {
	store := checklist.NewStore(nil, false)
	m := NewBoardModel(store, BoardOptions{})
	assert.Contains(t, m.View(), "Loading board")
}

func TestViewShowsMetrics(t *testing.T) {
	m, _ := newTestBoard(t, firstN(250))
	view := stripANSI(m.View())

	assert.Contains(t, view, "250 completed")
	assert.Contains(t, view, "25%")
	assert.Contains(t, view, "$9,250")
	assert.Contains(t, view, "750")
	assert.Contains(t, view, "▲25%")
	assert.Contains(t, view, "reset progress")
	assert.Contains(t, view, "complete all")
}

func TestKeyboardHoverAndToggle(t *testing.T) {
	m, bridge := newTestBoard(t, nil)

	_, ok := m.Hovered()
	require.False(t, ok)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	idx, ok := m.Hovered()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	idx, _ = m.Hovered()
	assert.Equal(t, 1+m.Columns(), idx)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, bridge.LoadChecklist()[idx], "toggle persisted")
	assert.Contains(t, stripANSI(m.View()), "Sale #"+itoa(idx+1))
	assert.Contains(t, stripANSI(m.View()), "1 completed")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, checklist.Compute(bridge.LoadChecklist()).Completed)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.Hovered()
	assert.False(t, ok)
}

func TestHoverClampsToBounds(t *testing.T) {
	m, _ := newTestBoard(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	idx, _ := m.Hovered()
	assert.Equal(t, checklist.TotalItems-1, idx)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	idx, _ = m.Hovered()
	assert.Equal(t, 0, idx)
}

func TestToggleWithoutHoverDoesNothing(t *testing.T) {
	m, bridge := newTestBoard(t, nil)
	m, cmd := sendCmd(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Nil(t, cmd)
	assert.Zero(t, checklist.Compute(bridge.LoadChecklist()).Completed)
	assert.False(t, m.Celebrating())
}

func TestCelebrationOnHundredthSale(t *testing.T) {
	m, _ := newTestBoard(t, firstN(99))

	m = send(t, m, runes("g"))
	for _, r := range "100" {
		m = send(t, m, runes(string(r)))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	idx, ok := m.Hovered()
	require.True(t, ok)
	require.Equal(t, 99, idx)

	m, cmd := sendCmd(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)
	assert.True(t, m.Celebrating())
	assert.Contains(t, stripANSI(m.View()), "100 sales!")

	// Unchecking does not celebrate again and leaves the window alone.
	gen := m.celebrationGen
	m, _ = sendCmd(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, gen, m.celebrationGen)

	m = send(t, m, celebrationDoneMsg{gen: gen})
	assert.False(t, m.Celebrating())
}

func TestCelebrationRearmIgnoresStaleHide(t *testing.T) {
	m, _ := newTestBoard(t, nil)

	m = send(t, m, runes("A"))
	m = send(t, m, runes("y"))
	require.True(t, m.Celebrating())
	first := m.celebrationGen

	m = send(t, m, runes("A"))
	m = send(t, m, runes("y"))
	second := m.celebrationGen
	require.Greater(t, second, first)

	m = send(t, m, celebrationDoneMsg{gen: first})
	assert.True(t, m.Celebrating(), "stale hide must not close the new window")

	m = send(t, m, celebrationDoneMsg{gen: second})
	assert.False(t, m.Celebrating())
}

func TestCelebrationTickHidesAfterWindow(t *testing.T) {
	store := checklist.NewStore(firstN(99), false)
	m := NewBoardModel(store, BoardOptions{Celebration: time.Millisecond})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := m.celebrate()
	require.True(t, m.Celebrating())

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	hidden := false
	for _, c := range batch {
		if done, ok := c().(celebrationDoneMsg); ok {
			m = send(t, m, done)
			hidden = true
		}
	}
	assert.True(t, hidden)
	assert.False(t, m.Celebrating())
}

func TestResetRequiresConfirmation(t *testing.T) {
	m, bridge := newTestBoard(t, firstN(40))

	m = send(t, m, runes("R"))
	assert.Contains(t, stripANSI(m.View()), "Reset Progress")

	m = send(t, m, runes("n"))
	assert.Equal(t, 40, checklist.Compute(bridge.LoadChecklist()).Completed)

	m = send(t, m, runes("R"))
	m, cmd := sendCmd(t, m, runes("y"))
	assert.Nil(t, cmd, "reset never celebrates")
	assert.False(t, m.Celebrating())
	assert.Zero(t, checklist.Compute(bridge.LoadChecklist()).Completed)
	assert.NotContains(t, stripANSI(m.View()), "40 completed")
}

func TestCompleteAllDefaultsToNo(t *testing.T) {
	m, bridge := newTestBoard(t, nil)

	m = send(t, m, runes("A"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, checklist.Compute(bridge.LoadChecklist()).Completed)

	m = send(t, m, runes("A"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, checklist.TotalItems, checklist.Compute(bridge.LoadChecklist()).Completed)
	assert.True(t, m.Celebrating())
	assert.Contains(t, stripANSI(m.View()), "All 1000 sales!")
}

func TestThemeTogglePersists(t *testing.T) {
	m, bridge := newTestBoard(t, nil)
	assert.Contains(t, stripANSI(m.View()), "light")

	m = send(t, m, runes("t"))
	assert.True(t, bridge.LoadDarkMode())
	assert.Contains(t, stripANSI(m.View()), "dark")

	send(t, m, runes("t"))
	assert.False(t, bridge.LoadDarkMode())
}

func TestJumpRejectsBadInput(t *testing.T) {
	m, _ := newTestBoard(t, nil)

	m = send(t, m, runes("g"))
	m = send(t, m, runes("0"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, stripANSI(m.View()), "out of range")
	_, ok := m.Hovered()
	assert.False(t, ok)

	m = send(t, m, runes("g"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, stripANSI(m.View()), "Jump to sale")
}

func TestJumpScrollsGrid(t *testing.T) {
	m, _ := newTestBoard(t, nil)

	m = send(t, m, runes("g"))
	for _, r := range "990" {
		m = send(t, m, runes(string(r)))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	idx, _ := m.Hovered()
	require.Equal(t, 989, idx)
	row := m.gridComponent().RowOf(idx)
	assert.GreaterOrEqual(t, row, m.grid.YOffset)
	assert.Less(t, row, m.grid.YOffset+m.grid.Height)
}

func TestMouseHoverClickAndLeave(t *testing.T) {
	m, bridge := newTestBoard(t, nil)
	cols := m.Columns()

	// Second row, third cell.
	x := components.GridGutter + 2*components.CellWidth + 1
	y := m.gridTop + 1
	want := cols + 2

	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	idx, ok := m.Hovered()
	require.True(t, ok)
	assert.Equal(t, want, idx)
	assert.Contains(t, stripANSI(m.View()), "Sale #"+itoa(want+1))

	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, bridge.LoadChecklist()[want])

	// Gutter counts as leaving the grid.
	m = send(t, m, tea.MouseMsg{X: 1, Y: y, Action: tea.MouseActionMotion})
	_, ok = m.Hovered()
	assert.False(t, ok)

	// So does the header.
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	m = send(t, m, tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionMotion})
	_, ok = m.Hovered()
	assert.False(t, ok)
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestBoard(t, nil)
	m = send(t, m, runes("?"))
	assert.Contains(t, stripANSI(m.View()), "Press any key to close")

	m = send(t, m, runes("x"))
	assert.NotContains(t, stripANSI(m.View()), "Press any key to close")
}

func TestQuit(t *testing.T) {
	m, _ := newTestBoard(t, nil)
	m, cmd := sendCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
