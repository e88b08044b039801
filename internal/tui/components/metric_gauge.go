package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

// MetricGauge displays a single headline figure above its label.
type MetricGauge struct {
	Label string
	Value string
	Color lipgloss.Color
	Muted lipgloss.Color
}

// Render returns the styled metric gauge.
func (m MetricGauge) Render() string {
	valueStyle := lipgloss.NewStyle().
		Foreground(m.Color).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(m.Muted)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		valueStyle.Render(m.Value),
		labelStyle.Render(m.Label),
	)
}

// percentColor is muted below the first marker, warn below halfway and ok
// from there on.
func percentColor(pct float64, p styles.Palette) lipgloss.Color {
	switch {
	case pct >= 50:
		return p.StatusOK
	case pct >= 25:
		return p.StatusWarn
	default:
		return p.TextMuted
	}
}
