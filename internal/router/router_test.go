package router

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	id      nav.Screen
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return string(s.id) }
func (s *stubScreen) Title() string        { return string(s.id) }
func (s *stubScreen) ID() nav.Screen       { return s.id }

// navAdapter drives a bare nav.Navigator.
type navAdapter struct{ *nav.Navigator }

func (n navAdapter) Navigate(to nav.Screen) error { return n.Go(to) }

func newTestRouter() (*Router, *int) {
	builds := 0
	r := New(navAdapter{nav.New()}, func(id nav.Screen) screen.Screen {
		builds++
		return &stubScreen{id: id}
	})
	return r, &builds
}

func TestStartsAtLanding(t *testing.T) {
	r, builds := newTestRouter()
	if r.Active().ID() != nav.Landing {
		t.Errorf("expected landing, got %s", r.Active().ID())
	}
	if *builds != 1 {
		t.Errorf("expected one build, got %d", *builds)
	}
}

func TestNavigateBuildsScreen(t *testing.T) {
	r, _ := newTestRouter()

	r.Update(NavigateMsg{To: nav.LanguageSelector})

	active := r.Active().(*stubScreen)
	if active.ID() != nav.LanguageSelector {
		t.Fatalf("expected language selector, got %s", active.ID())
	}
	if !active.initRan {
		t.Error("expected Init() to run on the new screen")
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestInvalidNavigationIgnored(t *testing.T) {
	r, builds := newTestRouter()

	cmd := r.Update(NavigateMsg{To: nav.GameMemory})
	if cmd != nil {
		t.Error("expected no command for a rejected edge")
	}
	if r.Current() != nav.Landing {
		t.Errorf("expected to stay on landing, got %s", r.Current())
	}
	if !errors.Is(r.Err(), nav.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", r.Err())
	}
	if *builds != 1 {
		t.Errorf("rejected edge should not build, got %d builds", *builds)
	}
}

func TestBack(t *testing.T) {
	r, _ := newTestRouter()
	r.Update(NavigateMsg{To: nav.ParentDashboard})
	r.Update(BackMsg{})

	if r.Active().ID() != nav.Landing {
		t.Errorf("expected landing after back, got %s", r.Active().ID())
	}

	r.Update(BackMsg{})
	if r.Err() == nil {
		t.Error("expected an error going back from landing")
	}
}

func TestSyncFollowsNavigator(t *testing.T) {
	n := navAdapter{nav.New()}
	r := New(n, func(id nav.Screen) screen.Screen { return &stubScreen{id: id} })

	for _, s := range []nav.Screen{nav.LanguageSelector, nav.Dashboard} {
		if err := n.Go(s); err != nil {
			t.Fatal(err)
		}
	}
	if r.Active().ID() != nav.Landing {
		t.Fatal("router should not move on its own")
	}

	r.Sync()
	if r.Active().ID() != nav.Dashboard {
		t.Errorf("expected dashboard after sync, got %s", r.Active().ID())
	}

	before := r.Active()
	r.Sync()
	if r.Active() != before {
		t.Error("sync without movement should keep the screen")
	}
}

func TestForwardsOtherMessages(t *testing.T) {
	r, _ := newTestRouter()
	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	got := r.Active().(*stubScreen).got
	if len(got) != 1 {
		t.Fatalf("expected message forwarded, got %d", len(got))
	}
}

func TestCommandHelpers(t *testing.T) {
	if msg, ok := Navigate(nav.Album)().(NavigateMsg); !ok || msg.To != nav.Album {
		t.Errorf("unexpected message %#v", msg)
	}
	if _, ok := Back()().(BackMsg); !ok {
		t.Error("expected BackMsg")
	}
}
