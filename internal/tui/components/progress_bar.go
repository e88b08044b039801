package components

import (
	"math"
	"strings"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

// ProgressBar draws completion as a filled bar with the milestone markers
// on the line beneath it.
type ProgressBar struct {
	Completed int
	Width     int
	Styles    styles.Board
}

// filledCells converts the completed count to bar cells, clamped to width.
func filledCells(completed, width int) int {
	ratio := float64(completed) / checklist.TotalItems
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// markerColumn is the bar column a milestone's tick sits under.
func markerColumn(m checklist.Milestone, width int) int {
	col := int(math.Round(m.Fraction()*float64(width))) - 1
	if col < 0 {
		col = 0
	}
	return col
}

// Render returns the bar line and the marker line joined by a newline.
func (p ProgressBar) Render() string {
	width := p.Width
	if width < 10 {
		width = 10
	}

	filled := filledCells(p.Completed, width)
	bar := p.Styles.BarFilled.Render(strings.Repeat("█", filled)) +
		p.Styles.BarEmpty.Render(strings.Repeat("░", width-filled))

	return bar + "\n" + p.renderMarkers(width)
}

// renderMarkers lays out "▲25%" style labels right-aligned to each marker
// column. Labels that would overlap the previous one are dropped.
func (p ProgressBar) renderMarkers(width int) string {
	var b strings.Builder
	cursor := 0
	for _, m := range checklist.Milestones() {
		label := "▲" + m.Label
		labelW := len([]rune(label))
		start := markerColumn(m, width) - labelW + 1
		if start < cursor {
			continue
		}
		b.WriteString(strings.Repeat(" ", start-cursor))

		style := p.Styles.MarkerMiss
		if m.Reached(p.Completed) {
			style = p.Styles.MarkerHit
		}
		b.WriteString(style.Render(label))
		cursor = start + labelW
	}
	return b.String()
}
