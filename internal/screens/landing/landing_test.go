package landing

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
)

func sendTicks(s *Screen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestAnimationPhases(t *testing.T) {
	s := New(true)
	if s.Init() == nil {
		t.Fatal("animated landing should start ticking")
	}
	if strings.Contains(s.View(100, 30), "one seed") {
		t.Error("tagline should not show at start")
	}

	sendTicks(s, 15)
	if s.elapsed != phase2End {
		t.Errorf("expected elapsed %v, got %v", phase2End, s.elapsed)
	}
	if !strings.Contains(s.View(100, 30), "one seed") {
		t.Error("tagline should show after phase 2")
	}
	if s.Ready() {
		t.Error("menu should not be ready yet")
	}

	if cmd := sendTicks(s, 20); cmd != nil {
		t.Error("ticking should stop once the animation ends")
	}
	if s.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, s.elapsed)
	}
}

func TestKeySkipsAnimation(t *testing.T) {
	s := New(true)
	sendTicks(s, 2)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("the skipping key should not also press the menu")
	}
	if !s.Ready() {
		t.Error("expected animation skipped")
	}
}

func TestCalmLandingIsStatic(t *testing.T) {
	s := New(false)
	if s.Init() != nil {
		t.Error("calm landing should not tick")
	}
	if !s.Ready() {
		t.Error("calm landing should be ready at once")
	}
}

func TestMenuNavigates(t *testing.T) {
	tests := []struct {
		downs int
		want  nav.Screen
	}{
		{0, nav.LanguageSelector},
		{1, nav.ParentDashboard},
	}
	for _, tt := range tests {
		s := New(false)
		for range tt.downs {
			s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("expected a command for %s", tt.want)
		}
		msg, ok := cmd().(router.NavigateMsg)
		if !ok || msg.To != tt.want {
			t.Errorf("expected NavigateMsg to %s, got %#v", tt.want, msg)
		}
	}
}

func TestTitleEmpty(t *testing.T) {
	if New(false).Title() != "" {
		t.Error("landing should have no title")
	}
}
