// Package parent is the grown-up view: the progress report, the most
// recent games and a guarded progress reset.
package parent

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/report"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/store"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// RecentLimit is how many recorded games the screen lists.
const RecentLimit = 8

type outcomesLoadedMsg struct {
	Events []store.OutcomeEvent
	Err    error
}

// Screen renders the parent report.
type Screen struct {
	deps      screen.Deps
	now       func() time.Time
	recent    []store.OutcomeEvent
	loaded    bool
	errMsg    string
	confirm   bool
	statusMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	return &Screen{deps: deps, now: time.Now}
}

func (s *Screen) ID() nav.Screen { return nav.ParentDashboard }

func (s *Screen) Title() string { return "For grown-ups" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "y", Description: "Erase progress"},
			{Key: "n", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "x", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Init() tea.Cmd {
	events := s.deps.Events
	if events == nil {
		return func() tea.Msg { return outcomesLoadedMsg{} }
	}
	ctx := s.deps.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		recs, err := events.QueryOutcomes(ctx, store.QueryOpts{Limit: RecentLimit})
		return outcomesLoadedMsg{Events: recs, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.recent = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		if s.confirm {
			s.confirm = false
			if msg.String() == "y" {
				if err := s.deps.Engine.ResetProgress(s.deps.Ctx); err != nil {
					s.statusMsg = "Reset failed: " + err.Error()
				} else {
					s.statusMsg = "Progress erased."
				}
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, router.Back()
		case "x":
			s.confirm = true
			s.statusMsg = ""
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	eng := s.deps.Engine
	r := report.Build(eng.Stats(), eng.Catalog(), eng.Language(), s.now())
	cw := min(max(width-4, 40), 80)

	var b strings.Builder
	b.WriteString(report.Terminal(r, cw))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render("Recent games"))
	b.WriteString("\n")
	b.WriteString(s.recentView())

	switch {
	case s.confirm:
		b.WriteString("\n\n" + theme.Incorrect.Render("Erase all words, stars and stickers? (y/n)"))
	case s.statusMsg != "":
		b.WriteString("\n\n" + theme.Hint.Render(s.statusMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *Screen) recentView() string {
	switch {
	case s.errMsg != "":
		return theme.Incorrect.Render("Error: " + s.errMsg)
	case !s.loaded:
		return theme.Hint.Render("Loading...")
	case len(s.recent) == 0:
		return theme.Hint.Render("No games recorded yet.")
	}

	cat := s.deps.Engine.Catalog()
	var b strings.Builder
	for _, e := range s.recent {
		title := e.ModuleID
		if m, ok := cat.Module(e.ModuleID); ok {
			title = m.Icon + " " + m.Title
		}
		line := fmt.Sprintf("%s  %-18s %-16s +%d ⭐  %d words",
			e.Timestamp.Format("Jan 02 15:04"), e.Game, title, e.Points, len(e.Learned))
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
