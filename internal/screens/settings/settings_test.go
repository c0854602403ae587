package settings

import (
	"strings"
	"testing"

	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen/screentest"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

func TestCycle(t *testing.T) {
	if got := cycle(AudioSpeeds, 1.5, 1); got != 0.5 {
		t.Errorf("cycle wraps forward: got %v", got)
	}
	if got := cycle(AudioSpeeds, 0.5, -1); got != 1.5 {
		t.Errorf("cycle wraps back: got %v", got)
	}
	if got := cycle(AudioSpeeds, 0.9, 1); got != 0.5 {
		t.Errorf("unknown value resets: got %v", got)
	}
}

func TestToggleSaves(t *testing.T) {
	deps, _ := screentest.Deps(t)
	s := New(deps)
	t.Cleanup(func() { Apply(progress.DefaultSettings()) })

	// Text size: medium -> large.
	s.Update(screentest.Key("right"))
	if got := deps.Engine.Settings().FontSize; got != progress.FontLarge {
		t.Errorf("FontSize = %s, want large", got)
	}

	s.Update(screentest.Key("down"))
	s.Update(screentest.Key("enter"))
	if !deps.Engine.Settings().HighContrast {
		t.Fatal("high contrast should be on")
	}
	if theme.Primary != theme.HighContrast.Primary {
		t.Error("the high contrast palette should be active")
	}
	if s.err != nil {
		t.Fatal(s.err)
	}
	if strings.Contains(s.View(80, 40), "Could not save") {
		t.Error("a saved change should not show an error")
	}
}

func TestRewardRows(t *testing.T) {
	deps, _ := screentest.Deps(t)
	s := New(deps)

	for i, r := range s.rows {
		if r.label == "Reward: fireworks" {
			s.selected = i
		}
	}
	s.Update(screentest.Key("space"))
	if !deps.Engine.Settings().RewardEnabled(progress.RewardFireworks) {
		t.Error("fireworks should be enabled")
	}
	s.Update(screentest.Key("space"))
	if deps.Engine.Settings().RewardEnabled(progress.RewardFireworks) {
		t.Error("fireworks should be disabled again")
	}
}

func TestEscGoesBack(t *testing.T) {
	deps, _ := screentest.Deps(t)
	_, cmd := New(deps).Update(screentest.Key("esc"))
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("esc should go back")
	}
}
