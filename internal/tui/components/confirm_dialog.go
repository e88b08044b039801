package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

// ConfirmDialog is a modal yes/no dialog. The board opens one before a bulk
// action and applies the action only when Confirmed.
type ConfirmDialog struct {
	Title     string
	Message   string
	Confirmed bool
	Done      bool
	Styles    styles.Board
	selected  int // 0 = Yes, 1 = No
}

// NewConfirmDialog creates a new confirmation dialog.
func NewConfirmDialog(title, message string, st styles.Board) ConfirmDialog {
	return ConfirmDialog{
		Title:    title,
		Message:  message,
		Styles:   st,
		selected: 1, // default to No for safety
	}
}

// Update handles keyboard input for confirmation.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			d.Confirmed = true
			d.Done = true
			return d, nil
		case "n", "N", "esc", "q":
			d.Confirmed = false
			d.Done = true
			return d, nil
		case "enter":
			d.Confirmed = d.selected == 0
			d.Done = true
			return d, nil
		case "left", "h", "tab":
			d.selected = 0
		case "right", "l", "shift+tab":
			d.selected = 1
		}
	}
	return d, nil
}

// View returns the styled dialog.
func (d ConfirmDialog) View() string {
	p := d.Styles.Palette

	title := lipgloss.NewStyle().
		Foreground(p.AccentPrimary).
		Bold(true).
		Render(d.Title)

	message := lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Render(d.Message)

	selectedStyle := lipgloss.NewStyle().
		Background(p.AccentPrimary).
		Foreground(p.BgDeep).
		Bold(true).
		Padding(0, 1)

	unselectedStyle := lipgloss.NewStyle().
		Background(p.BgSurface).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	yesBtn, noBtn := unselectedStyle.Render(" Yes "), selectedStyle.Render(" No ")
	if d.selected == 0 {
		yesBtn, noBtn = selectedStyle.Render(" Yes "), unselectedStyle.Render(" No ")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn)

	hint := lipgloss.NewStyle().Foreground(p.TextMuted).
		Render("y/n or ←→ + enter")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		message,
		"",
		buttons,
		"",
		hint,
	)

	return d.Styles.Dialog.Render(content)
}
