package styles

import "github.com/charmbracelet/lipgloss"

// Board holds every style the board view needs for one palette. Build it
// once per theme change rather than per frame.
type Board struct {
	Palette Palette

	Page   lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style
	Dialog lipgloss.Style

	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Gold  lipgloss.Style
	Muted lipgloss.Style

	CellChecked   lipgloss.Style
	CellUnchecked lipgloss.Style
	CellHover     lipgloss.Style
	CellNumber    lipgloss.Style

	BarFilled  lipgloss.Style
	BarEmpty   lipgloss.Style
	MarkerHit  lipgloss.Style
	MarkerMiss lipgloss.Style

	Key         lipgloss.Style
	KeyDesc     lipgloss.Style
	Celebration lipgloss.Style
}

// NewBoard derives the board styles from p.
func NewBoard(p Palette) Board {
	return Board{
		Palette: p,

		Page: lipgloss.NewStyle().
			Background(p.BgDeep).
			Foreground(p.TextPrimary),
		Header: lipgloss.NewStyle().
			Background(p.BgPanel).
			Foreground(p.TextPrimary).
			PaddingLeft(1).
			PaddingRight(1),
		Footer: lipgloss.NewStyle().
			Background(p.BgSurface).
			Foreground(p.TextMuted).
			PaddingLeft(1).
			PaddingRight(1),
		Panel: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(p.BorderNormal).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Background(p.BgPanel).
			Border(RoundedBorder).
			BorderForeground(p.AccentTertiary).
			Padding(1, 2).
			Width(48).
			Align(lipgloss.Center),

		Title: lipgloss.NewStyle().Foreground(p.AccentPrimary).Bold(true),
		Label: lipgloss.NewStyle().Foreground(p.TextMuted),
		Value: lipgloss.NewStyle().Foreground(p.TextPrimary).Bold(true),
		Gold:  lipgloss.NewStyle().Foreground(p.AccentGold).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(p.TextMuted),

		CellChecked:   lipgloss.NewStyle().Foreground(p.AccentPrimary).Bold(true),
		CellUnchecked: lipgloss.NewStyle().Foreground(p.BorderNormal),
		CellHover:     lipgloss.NewStyle().Background(p.BgHover).Foreground(p.AccentSecondary).Bold(true),
		CellNumber:    lipgloss.NewStyle().Foreground(p.TextMuted),

		BarFilled:  lipgloss.NewStyle().Foreground(p.AccentPrimary),
		BarEmpty:   lipgloss.NewStyle().Foreground(p.BorderNormal),
		MarkerHit:  lipgloss.NewStyle().Foreground(p.StatusOK).Bold(true),
		MarkerMiss: lipgloss.NewStyle().Foreground(p.TextMuted),

		Key:         lipgloss.NewStyle().Foreground(p.AccentPrimary).Bold(true),
		KeyDesc:     lipgloss.NewStyle().Foreground(p.TextMuted),
		Celebration: lipgloss.NewStyle().Foreground(p.AccentGold).Bold(true),
	}
}
