package nav

import (
	"errors"
	"testing"
)

func TestStartsAtLanding(t *testing.T) {
	if got := New().Current(); got != Landing {
		t.Errorf("Current() = %q, want %q", got, Landing)
	}
}

func TestHappyPath(t *testing.T) {
	n := New()
	path := []Screen{LanguageSelector, Dashboard, ModuleOverview, GameMemory, ModuleOverview, Dashboard, Album, Dashboard, Settings, Dashboard}
	for _, to := range path {
		if err := n.Go(to); err != nil {
			t.Fatalf("Go(%q) from %q: %v", to, n.Current(), err)
		}
	}
	if n.Current() != Dashboard {
		t.Errorf("ended at %q", n.Current())
	}
}

func TestEveryGameReturnsToOverview(t *testing.T) {
	for _, g := range Games {
		if !Allowed(ModuleOverview, g) {
			t.Errorf("overview -> %s should be allowed", g)
		}
		if !Allowed(g, ModuleOverview) {
			t.Errorf("%s -> overview should be allowed", g)
		}
		if Allowed(g, Dashboard) {
			t.Errorf("%s -> dashboard should not be allowed", g)
		}
		if !g.IsGame() {
			t.Errorf("%s should be a game", g)
		}
	}
	if Dashboard.IsGame() {
		t.Error("dashboard is not a game")
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		from, to Screen
	}{
		{Landing, Dashboard},
		{Landing, GameAssociation},
		{Dashboard, ParentDashboard},
		{ParentDashboard, Dashboard},
		{Settings, Album},
		{Album, ModuleOverview},
	}
	for _, tt := range tests {
		if Allowed(tt.from, tt.to) {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}

	n := New()
	err := n.Go(Dashboard)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if n.Current() != Landing {
		t.Errorf("failed Go must not move, at %q", n.Current())
	}
}

func TestParentDashboardLoop(t *testing.T) {
	n := New()
	if err := n.Go(ParentDashboard); err != nil {
		t.Fatal(err)
	}
	if err := n.Go(Landing); err != nil {
		t.Fatal(err)
	}
}

func TestBack(t *testing.T) {
	n := New()
	if _, ok := n.Back(); ok {
		t.Error("Back at landing should report false")
	}

	for _, s := range []Screen{LanguageSelector, Dashboard, ModuleOverview, GameLogic} {
		if err := n.Go(s); err != nil {
			t.Fatal(err)
		}
	}

	want := []Screen{ModuleOverview, Dashboard, LanguageSelector, Landing}
	for _, w := range want {
		got, ok := n.Back()
		if !ok || got != w {
			t.Errorf("Back() = %q, %v; want %q", got, ok, w)
		}
	}
}

func TestBackEdgesAreTransitions(t *testing.T) {
	for from, to := range parent {
		if !Allowed(from, to) {
			t.Errorf("back edge %s -> %s missing from transitions", from, to)
		}
	}
}

func TestNextReturnsCopy(t *testing.T) {
	next := Next(Landing)
	next[0] = Album
	if Next(Landing)[0] != LanguageSelector {
		t.Error("Next must not expose the table")
	}
}
