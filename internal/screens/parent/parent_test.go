package parent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen/screentest"
	"github.com/abhisek/wordgarden/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	events []store.OutcomeEvent
	err    error
	opts   store.QueryOpts
}

func (f *fakeEvents) QueryOutcomes(_ context.Context, opts store.QueryOpts) ([]store.OutcomeEvent, error) {
	f.opts = opts
	return f.events, f.err
}

func TestReportAndRecentGames(t *testing.T) {
	deps, _ := screentest.Deps(t)
	events := &fakeEvents{events: []store.OutcomeEvent{{
		Timestamp: time.Date(2026, 10, 17, 16, 30, 0, 0, time.UTC),
		OutcomeEventData: store.OutcomeEventData{
			Game: "association", ModuleID: "fruits", Points: 10, Learned: []string{"apple"},
		},
	}}}
	deps.Events = events
	screentest.Learn(t, deps, "fruits")

	s := New(deps)
	if !strings.Contains(s.View(100, 60), "Loading") {
		t.Error("recent games load asynchronously")
	}
	s.Update(s.Init()())
	if events.opts.Limit != RecentLimit {
		t.Errorf("Limit = %d, want %d", events.opts.Limit, RecentLimit)
	}

	view := s.View(100, 60)
	for _, want := range []string{"Parent Report", "Oct 17 16:30", "+10"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestLoadError(t *testing.T) {
	deps, _ := screentest.Deps(t)
	deps.Events = &fakeEvents{err: errors.New("disk gone")}
	s := New(deps)
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 60), "disk gone") {
		t.Error("load errors should show")
	}
}

func TestResetNeedsConfirmation(t *testing.T) {
	deps, _ := screentest.Deps(t)
	screentest.Learn(t, deps, "fruits")
	s := New(deps)

	s.Update(screentest.Key("x"))
	s.Update(screentest.Key("n"))
	if len(deps.Engine.Stats().LearnedWordIDs) != 2 {
		t.Fatal("declining must keep progress")
	}

	s.Update(screentest.Key("x"))
	if !strings.Contains(s.View(100, 60), "(y/n)") {
		t.Error("expected a confirmation prompt")
	}
	s.Update(screentest.Key("y"))
	if len(deps.Engine.Stats().LearnedWordIDs) != 0 {
		t.Error("confirming should erase progress")
	}
	if !strings.Contains(s.View(100, 60), "Progress erased") {
		t.Error("expected a status line")
	}
}

func TestEscGoesBack(t *testing.T) {
	deps, _ := screentest.Deps(t)
	_, cmd := New(deps).Update(screentest.Key("esc"))
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("esc should go back")
	}
}
