package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/Dallionking/milestone/internal/tui/styles"
)

// Confetti is the spinner animation shown while a celebration is visible.
var Confetti = spinner.Spinner{
	Frames: []string{
		"✦ ⋆ ✧ ⋆ ✦",
		"⋆ ✧ ✦ ✧ ⋆",
		"✧ ✦ ⋆ ✦ ✧",
		"⋆ ✦ ✧ ✦ ⋆",
	},
	FPS: time.Second / 8,
}

// NewConfettiSpinner returns a spinner model using the Confetti frames.
func NewConfettiSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(Confetti))
}

// Celebration renders the banner for a reached milestone.
type Celebration struct {
	Completed int
	Frame     string // current spinner frame
	Styles    styles.Board
}

// Render returns the banner text.
func (c Celebration) Render() string {
	msg := fmt.Sprintf("%d sales!", c.Completed)
	if c.Completed >= 1000 {
		msg = "All 1000 sales!"
	}
	return c.Styles.Celebration.Render(c.Frame + "  🎉 " + msg + " 🎉  " + c.Frame)
}
