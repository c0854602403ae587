// Package app is the root Bubble Tea model. It hosts the screen for the
// session's navigation state, records finished games and shows the
// celebration that follows.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/cheer"
	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/reward"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/screens/album"
	"github.com/abhisek/wordgarden/internal/screens/dashboard"
	"github.com/abhisek/wordgarden/internal/screens/landing"
	"github.com/abhisek/wordgarden/internal/screens/language"
	"github.com/abhisek/wordgarden/internal/screens/overview"
	"github.com/abhisek/wordgarden/internal/screens/parent"
	"github.com/abhisek/wordgarden/internal/screens/play"
	"github.com/abhisek/wordgarden/internal/screens/settings"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/speech"
	"github.com/abhisek/wordgarden/internal/store"
	"github.com/abhisek/wordgarden/internal/ui/layout"
)

// Options wires the app. Engine is required. Display should be the one the
// engine shows rewards on.
type Options struct {
	Engine  *session.Engine
	Display *reward.Display
	Voice   speech.Speaker
	Cheer   *cheer.Service
	Events  store.EventRepo
	Log     *logger.Logger

	// Rand seeds each game; nil uses a random seed.
	Rand func() *rand.Rand
}

// rewardExpiredMsg redraws once a celebration has timed out.
type rewardExpiredMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	engine  *session.Engine
	display *reward.Display
	log     *logger.Logger
	router  *router.Router
	width   int
	height  int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	deps := screen.Deps{
		Ctx:    ctx,
		Engine: opts.Engine,
		Voice:  opts.Voice,
		Cheer:  opts.Cheer,
		Events: opts.Events,
		Rand:   opts.Rand,
	}
	return AppModel{
		ctx:     ctx,
		engine:  opts.Engine,
		display: opts.Display,
		log:     opts.Log.With("component", "app"),
		router:  router.New(opts.Engine, factory(deps)),
	}
}

// factory builds the screen for each navigation state.
func factory(deps screen.Deps) screen.Factory {
	return func(id nav.Screen) screen.Screen {
		switch id {
		case nav.Landing:
			return landing.New(deps.Engine.Settings().EnableAnimations)
		case nav.LanguageSelector:
			return language.New(deps)
		case nav.Dashboard:
			return dashboard.New(deps)
		case nav.ModuleOverview:
			return overview.New(deps)
		case nav.Settings:
			return settings.New(deps)
		case nav.Album:
			return album.New(deps)
		case nav.ParentDashboard:
			return parent.New(deps)
		}
		return play.New(deps, id)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.OutcomeMsg:
		return m, m.finish(msg.Outcome)

	case rewardExpiredMsg:
		return m, nil
	}

	cmd := m.router.Update(msg)
	if err := m.router.Err(); err != nil {
		m.log.Debug("navigation rejected", "error", err)
	}
	return m, cmd
}

// finish records a finished game, returns to the module overview and
// schedules a redraw for when the celebration ends.
func (m AppModel) finish(o session.Outcome) tea.Cmd {
	kind, err := m.engine.FinishGame(m.ctx, o)
	if err != nil {
		m.log.Warn("finish game", "game", o.Game, "error", err)
	}
	cmd := m.router.Sync()
	if kind == reward.None {
		return cmd
	}
	return tea.Batch(cmd, tea.Tick(reward.DisplayDuration, func(time.Time) tea.Msg {
		return rewardExpiredMsg{}
	}))
}

func (m AppModel) headerInfo() layout.HeaderInfo {
	info := layout.HeaderInfo{Score: m.engine.Score()}
	if l, ok := m.engine.Catalog().Language(m.engine.Language()); ok {
		info.Language = l.Flag
	}
	if m.engine.Current() != nav.Landing {
		info.Mascot = m.engine.Mascot().Emoji
	}
	return info
}

func (m AppModel) hints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.router.Active().Title(), m.headerInfo(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	var content string
	if kind := m.activeReward(); kind != reward.None {
		content = layout.Overlay(Celebration(kind, m.engine.Settings()), m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) activeReward() reward.Kind {
	if m.display == nil {
		return reward.None
	}
	return m.display.Active()
}

// Run starts the practice timer and the Bubble Tea program, and blocks
// until the child quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Engine == nil {
		return fmt.Errorf("app: engine is required")
	}
	settings.Apply(opts.Engine.Settings())
	stop := opts.Engine.StartPracticeTimer(ctx)
	defer stop()

	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
