package models

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# OneManDB Milestone

Track **1000 sales** at $37 each.

| Key | Action |
|-----|--------|
| arrows / hjkl | move the cursor |
| space / enter / x | toggle the sale under the cursor |
| g or / | jump to a sale number |
| R | reset progress (asks first) |
| A | complete all (asks first) |
| t | switch dark / light theme |
| esc | clear the cursor |
| q | quit |

The mouse works too: hover a cell to see its number, click to toggle.

Every 100th sale gets a celebration. Progress is saved after every change.

*Press any key to close.*
`

// renderMarkdown renders md for the terminal, falling back to the raw text
// if glamour cannot build a renderer.
func renderMarkdown(md string, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
