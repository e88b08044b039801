package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one full set of board colors. The board swaps palettes when the
// theme flag flips; CLI output always uses the package-level Gotham Night
// colors below.
type Palette struct {
	Name string

	BgDeep    lipgloss.Color
	BgPanel   lipgloss.Color
	BgSurface lipgloss.Color
	BgHover   lipgloss.Color

	AccentPrimary   lipgloss.Color
	AccentSecondary lipgloss.Color
	AccentTertiary  lipgloss.Color
	AccentGold      lipgloss.Color

	StatusOK    lipgloss.Color
	StatusWarn  lipgloss.Color
	StatusError lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	BorderNormal  lipgloss.Color
	BorderFocused lipgloss.Color
}

// Gotham Night -- Dark Palette
// Deep midnight backgrounds with electric cyan accents.
var GothamNight = Palette{
	Name: "dark",

	BgDeep:    lipgloss.Color("#0a0e14"),
	BgPanel:   lipgloss.Color("#11151c"),
	BgSurface: lipgloss.Color("#1a1f2e"),
	BgHover:   lipgloss.Color("#232a3b"),

	AccentPrimary:   lipgloss.Color("#4fc1ff"),
	AccentSecondary: lipgloss.Color("#39c5bb"),
	AccentTertiary:  lipgloss.Color("#7c3aed"),
	AccentGold:      lipgloss.Color("#f5a623"),

	StatusOK:    lipgloss.Color("#22c55e"),
	StatusWarn:  lipgloss.Color("#f59e0b"),
	StatusError: lipgloss.Color("#ef4444"),

	TextPrimary:   lipgloss.Color("#e2e8f0"),
	TextSecondary: lipgloss.Color("#94a3b8"),
	TextMuted:     lipgloss.Color("#64748b"),

	BorderNormal:  lipgloss.Color("#2d3748"),
	BorderFocused: lipgloss.Color("#4fc1ff"),
}

// Paper -- Light Palette
// White page, black ink, grey rules.
var Paper = Palette{
	Name: "light",

	BgDeep:    lipgloss.Color("#ffffff"),
	BgPanel:   lipgloss.Color("#f8fafc"),
	BgSurface: lipgloss.Color("#f1f5f9"),
	BgHover:   lipgloss.Color("#e2e8f0"),

	AccentPrimary:   lipgloss.Color("#000000"),
	AccentSecondary: lipgloss.Color("#0f766e"),
	AccentTertiary:  lipgloss.Color("#6d28d9"),
	AccentGold:      lipgloss.Color("#b45309"),

	StatusOK:    lipgloss.Color("#15803d"),
	StatusWarn:  lipgloss.Color("#b45309"),
	StatusError: lipgloss.Color("#b91c1c"),

	TextPrimary:   lipgloss.Color("#0f172a"),
	TextSecondary: lipgloss.Color("#334155"),
	TextMuted:     lipgloss.Color("#64748b"),

	BorderNormal:  lipgloss.Color("#d1d5db"),
	BorderFocused: lipgloss.Color("#1f2937"),
}

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return GothamNight
	}
	return Paper
}

var (
	// Accents
	AccentPrimary = GothamNight.AccentPrimary
	AccentGold    = GothamNight.AccentGold

	// Status
	StatusOK    = GothamNight.StatusOK
	StatusWarn  = GothamNight.StatusWarn
	StatusError = GothamNight.StatusError
	StatusInfo  = GothamNight.AccentPrimary

	// Text
	TextPrimary   = GothamNight.TextPrimary
	TextSecondary = GothamNight.TextSecondary
	TextMuted     = GothamNight.TextMuted

	// Borders
	BorderNormal = GothamNight.BorderNormal
)
