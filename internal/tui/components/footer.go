package components

import (
	"strings"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "q", "space", "↑↓←→"
	Desc string // "quit", "toggle", "move"
}

// Footer renders context-aware keybinding hints.
type Footer struct {
	Hints  []KeyHint
	Width  int
	Styles styles.Board
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	var parts []string
	for _, h := range f.Hints {
		parts = append(parts, f.Styles.Key.Render(h.Key)+" "+f.Styles.KeyDesc.Render(h.Desc))
	}

	content := strings.Join(parts, f.Styles.KeyDesc.Render(" • "))
	return f.Styles.Footer.Width(width).MaxHeight(1).Render(content)
}

// BoardFooter returns the footer preset for the main board, including the
// bulk actions.
func BoardFooter(width int, st styles.Board) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "↑↓←→", Desc: "move"},
			{Key: "space", Desc: "toggle"},
			{Key: "g", Desc: "jump"},
			{Key: "R", Desc: "reset progress"},
			{Key: "A", Desc: "complete all"},
			{Key: "t", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
		Width:  width,
		Styles: st,
	}
}

// PromptFooter returns the footer shown while the jump prompt is open.
func PromptFooter(width int, st styles.Board) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "enter", Desc: "go"},
			{Key: "esc", Desc: "cancel"},
		},
		Width:  width,
		Styles: st,
	}
}
