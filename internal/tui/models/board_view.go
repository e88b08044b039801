package models

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/milestone/internal/tui/components"
)

// View renders header, grid, status line and footer, with any open overlay
// centred over the grid area.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading board..."
	}

	body := m.grid.View()
	switch {
	case m.confirm != nil:
		body = m.overlay(m.confirm.View())
	case m.showHelp:
		body = m.overlay(m.st.Panel.Render(m.helpText))
	}

	footer := components.BoardFooter(m.width, m.st)
	if m.jumping {
		footer = components.PromptFooter(m.width, m.st)
	}

	sections := []string{
		m.renderHeader(),
		body,
		m.renderStatusLine(),
		footer.Render(),
	}
	return m.st.Page.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader builds the header from freshly computed metrics.
func (m BoardModel) renderHeader() string {
	metrics := m.store.Metrics()

	banner := ""
	if m.celebrating {
		banner = components.Celebration{
			Completed: metrics.Completed,
			Frame:     m.confetti.View(),
			Styles:    m.st,
		}.Render()
	}

	return components.Header{
		Metrics:     metrics,
		DarkMode:    m.store.DarkMode(),
		Celebration: banner,
		Width:       m.width,
		Styles:      m.st,
	}.Render()
}

// renderStatusLine shows the jump prompt, a flash message or the hover
// label for the cell under the cursor.
func (m BoardModel) renderStatusLine() string {
	var content string
	switch {
	case m.jumping:
		content = m.jumpInput.View()
	case m.flash != "":
		content = lipgloss.NewStyle().Foreground(m.st.Palette.StatusWarn).Render(m.flash)
	case m.hovered >= 0:
		state := m.st.Muted.Render("open")
		if m.store.Checklist().Checked(m.hovered) {
			state = m.st.MarkerHit.Render("sold")
		}
		content = m.st.Value.Render(fmt.Sprintf("Sale #%d", m.hovered+1)) + "  " + state
	default:
		content = m.st.Muted.Render("Hover a cell or use the arrow keys")
	}
	return lipgloss.NewStyle().Width(m.width).PaddingLeft(1).MaxHeight(1).Render(content)
}

// overlay centres content in the grid area.
func (m BoardModel) overlay(content string) string {
	return lipgloss.Place(m.width, m.grid.Height, lipgloss.Center, lipgloss.Center, content)
}
