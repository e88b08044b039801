package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/components"
	"github.com/Dallionking/milestone/internal/tui/models"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

// RunBoard launches the interactive board in alt-screen mode with mouse
// motion reporting, so hover labels follow the pointer.
func RunBoard(store *checklist.Store, opts models.BoardOptions) error {
	model := models.NewBoardModel(store, opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// RenderSummary -- non-interactive snapshot
// ---------------------------------------------------------------------------

// RenderSummary renders the metrics, progress bar and milestone list as a
// plain block for the status command.
func RenderSummary(m checklist.Metrics, dark bool, width int) string {
	if width <= 0 {
		width = 60
	}
	st := styles.NewBoard(styles.PaletteFor(dark))

	themeName := "light"
	if dark {
		themeName = "dark"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(styles.CompactLogo))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(styles.Label.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("COMPLETED", styles.Value.Render(fmt.Sprintf("%d / %d", m.Completed, checklist.TotalItems)))
	row("PROGRESS", styles.Value.Render(fmt.Sprintf("%.1f%%", m.Percentage)))
	row("REVENUE", styles.RevenueText.Render(styles.Dollars(m.Revenue)))
	row("REMAINING", styles.Value.Render(fmt.Sprintf("%d", m.Remaining)))
	row("THEME", styles.Value.Render(themeName))
	b.WriteString("\n")

	b.WriteString(components.ProgressBar{Completed: m.Completed, Width: width, Styles: st}.Render())
	b.WriteString("\n\n")

	for _, ms := range checklist.Milestones() {
		badge := styles.StatusBadge("warn")
		if ms.Reached(m.Completed) {
			badge = styles.StatusBadge("ok")
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", badge, ms.Label))
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.TrimRight(b.String(), "\n"))
}
