// Package settings edits accessibility and reward preferences. Every
// change is saved at once and the palette is reapplied.
package settings

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// AudioSpeeds are the playback rates offered, slowest first.
var AudioSpeeds = []float64{0.5, 0.75, 1.0, 1.25, 1.5}

var (
	fontSizes   = []progress.FontSize{progress.FontSmall, progress.FontMedium, progress.FontLarge}
	intensities = []progress.ThemeIntensity{progress.ThemeSoft, progress.ThemeNormal, progress.ThemeVibrant}
)

// row is one editable preference. step moves the value by dir (+1 or -1)
// and returns the new settings.
type row struct {
	label string
	value func(progress.AppSettings) string
	step  func(s progress.AppSettings, dir int) progress.AppSettings
}

// Screen lists the preferences.
type Screen struct {
	deps     screen.Deps
	rows     []row
	selected int
	err      error
}

var _ screen.Screen = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	return &Screen{deps: deps, rows: buildRows(deps)}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// cycle returns the element dir steps away from cur, wrapping around.
func cycle[T comparable](options []T, cur T, dir int) T {
	i := slices.Index(options, cur)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+dir)%n+n)%n]
}

func buildRows(deps screen.Deps) []row {
	mascots := []string{progress.DefaultMascotID}
	for _, m := range deps.Engine.Catalog().Mascots {
		mascots = append(mascots, m.ID)
	}

	rows := []row{
		{
			label: "Text size",
			value: func(s progress.AppSettings) string { return string(s.FontSize) },
			step: func(s progress.AppSettings, dir int) progress.AppSettings {
				s.FontSize = cycle(fontSizes, s.FontSize, dir)
				return s
			},
		},
		{
			label: "High contrast",
			value: func(s progress.AppSettings) string { return onOff(s.HighContrast) },
			step: func(s progress.AppSettings, _ int) progress.AppSettings {
				s.HighContrast = !s.HighContrast
				return s
			},
		},
		{
			label: "Calm mode",
			value: func(s progress.AppSettings) string { return onOff(s.CalmMode) },
			step: func(s progress.AppSettings, _ int) progress.AppSettings {
				s.CalmMode = !s.CalmMode
				return s
			},
		},
		{
			label: "Voice speed",
			value: func(s progress.AppSettings) string { return fmt.Sprintf("%.2gx", s.AudioSpeed) },
			step: func(s progress.AppSettings, dir int) progress.AppSettings {
				s.AudioSpeed = cycle(AudioSpeeds, s.AudioSpeed, dir)
				return s
			},
		},
		{
			label: "Animations",
			value: func(s progress.AppSettings) string { return onOff(s.EnableAnimations) },
			step: func(s progress.AppSettings, _ int) progress.AppSettings {
				s.EnableAnimations = !s.EnableAnimations
				return s
			},
		},
		{
			label: "Sounds",
			value: func(s progress.AppSettings) string { return onOff(s.EnableSounds) },
			step: func(s progress.AppSettings, _ int) progress.AppSettings {
				s.EnableSounds = !s.EnableSounds
				return s
			},
		},
		{
			label: "Mascot",
			value: func(s progress.AppSettings) string {
				if m, ok := deps.Engine.Catalog().Mascot(s.PreferredMascotID); ok {
					return m.Emoji + " " + m.Name
				}
				return "language default"
			},
			step: func(s progress.AppSettings, dir int) progress.AppSettings {
				s.PreferredMascotID = cycle(mascots, s.PreferredMascotID, dir)
				return s
			},
		},
		{
			label: "Colors",
			value: func(s progress.AppSettings) string { return string(s.ThemeIntensity) },
			step: func(s progress.AppSettings, dir int) progress.AppSettings {
				s.ThemeIntensity = cycle(intensities, s.ThemeIntensity, dir)
				return s
			},
		},
	}

	for _, r := range progress.AllRewardTypes {
		rows = append(rows, row{
			label: "Reward: " + string(r),
			value: func(s progress.AppSettings) string { return onOff(s.RewardEnabled(r)) },
			step: func(s progress.AppSettings, _ int) progress.AppSettings {
				return s.WithReward(r, !s.RewardEnabled(r))
			},
		})
	}
	return rows
}

func (s *Screen) ID() nav.Screen { return nav.Settings }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Settings" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "esc":
		return s, router.Back()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.rows)-1 {
			s.selected++
		}
	case "left", "h":
		s.change(-1)
	case "right", "l", "enter", "space":
		s.change(1)
	}
	return s, nil
}

func (s *Screen) change(dir int) {
	next := s.rows[s.selected].step(s.deps.Engine.Settings(), dir)
	s.err = s.deps.Engine.UpdateSettings(s.deps.Ctx, next)
	Apply(s.deps.Engine.Settings())
}

// Apply activates the palette for st.
func Apply(st progress.AppSettings) {
	theme.Use(theme.Select(st.HighContrast, string(st.ThemeIntensity)))
}

func (s *Screen) View(width, height int) string {
	st := s.deps.Engine.Settings()
	var b strings.Builder
	b.WriteString(theme.Title.Render("⚙ Settings"))
	b.WriteString("\n\n")
	for i, r := range s.rows {
		line := fmt.Sprintf("%-18s %s", r.label, r.value(st))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselect.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if s.err != nil {
		b.WriteString("\n" + theme.Incorrect.Render("Could not save: "+s.err.Error()))
	}
	b.WriteString("\n" + theme.Word(string(st.FontSize)).Render("Aa"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), components.ContentWidth(width)))
}
