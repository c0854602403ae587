package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a full set of UI colors.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Gold      color.Color
}

// Garden is the default palette: soft greens and sky tones.
var Garden = Palette{
	Primary:   lipgloss.Color("#22C55E"), // Leaf green
	Secondary: lipgloss.Color("#38BDF8"), // Sky
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#4ADE80"),
	Error:     lipgloss.Color("#FB7185"),
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	BgDark:    lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
	Gold:      lipgloss.Color("#FACC15"),
}

// Soft lowers saturation for sensory-sensitive players.
var Soft = Palette{
	Primary:   lipgloss.Color("#86A78F"),
	Secondary: lipgloss.Color("#8FA9BF"),
	Accent:    lipgloss.Color("#C9A27E"),
	Success:   lipgloss.Color("#9CBF9F"),
	Error:     lipgloss.Color("#C69C9C"),
	Text:      lipgloss.Color("#E2E8F0"),
	TextDim:   lipgloss.Color("#94A3B8"),
	BgDark:    lipgloss.Color("#1E2430"),
	BgCard:    lipgloss.Color("#272F3C"),
	Border:    lipgloss.Color("#3B4556"),
	Gold:      lipgloss.Color("#D6C27A"),
}

// Vibrant is the saturated palette.
var Vibrant = Palette{
	Primary:   lipgloss.Color("#8B5CF6"),
	Secondary: lipgloss.Color("#14B8A6"),
	Accent:    lipgloss.Color("#FF6B00"),
	Success:   lipgloss.Color("#22C55E"),
	Error:     lipgloss.Color("#F43F5E"),
	Text:      lipgloss.Color("#FFFFFF"),
	TextDim:   lipgloss.Color("#A5B4FC"),
	BgDark:    lipgloss.Color("#0B1020"),
	BgCard:    lipgloss.Color("#1E1B4B"),
	Border:    lipgloss.Color("#4338CA"),
	Gold:      lipgloss.Color("#FFD700"),
}

// HighContrast is black, white and yellow only.
var HighContrast = Palette{
	Primary:   lipgloss.Color("#FFFF00"),
	Secondary: lipgloss.Color("#FFFFFF"),
	Accent:    lipgloss.Color("#FFFF00"),
	Success:   lipgloss.Color("#FFFFFF"),
	Error:     lipgloss.Color("#FFFF00"),
	Text:      lipgloss.Color("#FFFFFF"),
	TextDim:   lipgloss.Color("#FFFFFF"),
	BgDark:    lipgloss.Color("#000000"),
	BgCard:    lipgloss.Color("#000000"),
	Border:    lipgloss.Color("#FFFFFF"),
	Gold:      lipgloss.Color("#FFFF00"),
}

// Select picks the palette for the accessibility settings. High contrast
// wins over intensity.
func Select(highContrast bool, intensity string) Palette {
	switch {
	case highContrast:
		return HighContrast
	case intensity == "soft":
		return Soft
	case intensity == "vibrant":
		return Vibrant
	}
	return Garden
}

// Active colors. Use replaces them.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Gold      color.Color
)

// Styles derived from the active colors.
var (
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Hint      lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Unselect  lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Locked    lipgloss.Style
)

func init() { Use(Garden) }

// Use makes p the active palette. Call it before rendering, not
// concurrently with it.
func Use(p Palette) {
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border, Gold = p.BgDark, p.BgCard, p.Border, p.Gold

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body = lipgloss.NewStyle().Foreground(Text)
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Header = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)
	Footer = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselect = lipgloss.NewStyle().Foreground(Text)
	Correct = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Locked = lipgloss.NewStyle().Foreground(TextDim).Faint(true)
}

// Word styles a vocabulary word for the font size preference. Terminals
// cannot scale text, so larger sizes add weight and spacing instead.
func Word(fontSize string) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(Text).Bold(true)
	switch fontSize {
	case "small":
		return s.Bold(false)
	case "large":
		return s.Padding(1, 3).Border(lipgloss.ThickBorder()).BorderForeground(Primary)
	}
	return s.Padding(0, 2)
}
