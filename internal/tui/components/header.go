package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

// Header renders the title bar, progress bar, markers and metrics.
type Header struct {
	Metrics     checklist.Metrics
	DarkMode    bool
	Celebration string // banner text, empty when hidden
	Width       int
	Styles      styles.Board
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 2 // header padding
	st := h.Styles

	title := st.Title.Render(styles.CompactLogo)
	themeName := "☀ light"
	if h.DarkMode {
		themeName = "☾ dark"
	}
	theme := st.Label.Render("theme ") + st.Value.Render(themeName)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(theme)
	if gap < 1 {
		gap = 1
	}
	titleLine := title + strings.Repeat(" ", gap) + theme

	m := h.Metrics
	counts := st.Value.Render(fmt.Sprintf("%d completed", m.Completed))
	pct := lipgloss.NewStyle().
		Foreground(percentColor(m.Percentage, st.Palette)).
		Bold(true).
		Render(fmt.Sprintf("%d%%", int(math.Round(m.Percentage))))
	gap = inner - lipgloss.Width(counts) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	countLine := counts + strings.Repeat(" ", gap) + pct

	bar := ProgressBar{Completed: m.Completed, Width: inner, Styles: st}.Render()

	gauges := []string{
		MetricGauge{Label: "revenue", Value: styles.Dollars(m.Revenue), Color: st.Palette.AccentGold, Muted: st.Palette.TextMuted}.Render(),
		MetricGauge{Label: "sold", Value: fmt.Sprintf("%d", m.Completed), Color: st.Palette.AccentPrimary, Muted: st.Palette.TextMuted}.Render(),
		MetricGauge{Label: "remaining", Value: fmt.Sprintf("%d", m.Remaining), Color: st.Palette.TextPrimary, Muted: st.Palette.TextMuted}.Render(),
		MetricGauge{Label: "per sale", Value: styles.Dollars(checklist.UnitPrice), Color: st.Palette.TextSecondary, Muted: st.Palette.TextMuted}.Render(),
	}
	cell := inner / len(gauges)
	for i, g := range gauges {
		gauges[i] = lipgloss.PlaceHorizontal(cell, lipgloss.Center, g)
	}
	metricsRow := lipgloss.JoinHorizontal(lipgloss.Top, gauges...)

	// The banner line is always reserved so the grid below never shifts.
	banner := lipgloss.PlaceHorizontal(inner, lipgloss.Center, h.Celebration)
	lines := []string{titleLine, countLine, bar, metricsRow, banner}

	return st.Header.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
