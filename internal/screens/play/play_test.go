package play

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/games"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/screen/screentest"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/speech"
)

func depsFor(t *testing.T, module string) (screen.Deps, *screentest.Voice) {
	t.Helper()
	deps, voice := screentest.Deps(t)
	if module == "animals" {
		screentest.Learn(t, deps, "fruits")
	}
	if err := deps.Engine.SelectModule(module); err != nil {
		t.Fatal(err)
	}
	return deps, voice
}

// outcome returns the outcome carried by msgs, if any.
func outcome(msgs []tea.Msg) (session.Outcome, bool) {
	for _, m := range msgs {
		if o, ok := m.(router.OutcomeMsg); ok {
			return o.Outcome, true
		}
	}
	return session.Outcome{}, false
}

func hasCheer(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if c, ok := m.(screen.CheerMsg); ok && c.Text != "" {
			return true
		}
	}
	return false
}

func TestNewDispatch(t *testing.T) {
	deps, _ := depsFor(t, "fruits")
	for _, id := range nav.Games {
		if got := New(deps, id).ID(); got != id {
			t.Errorf("New(%s).ID() = %s", id, got)
		}
	}
	if _, ok := New(deps, nav.Dashboard).(*broken); !ok {
		t.Error("non-game screens must build the error screen")
	}
}

func TestAssociationRound(t *testing.T) {
	deps, voice := depsFor(t, "fruits")
	s := NewAssociation(deps)
	screentest.Drain(s.Init())
	if len(voice.Said) != 1 || voice.Said[0].Style != speech.StyleWord {
		t.Fatalf("expected the target word spoken, got %+v", voice.Said)
	}

	var msgs []tea.Msg
	for range s.game.Rounds() {
		target := s.game.Target()
		wrong, right := -1, -1
		for i, o := range s.game.Options() {
			if o.ID == target.ID {
				right = i
			} else if wrong < 0 {
				wrong = i
			}
		}
		if wrong >= 0 {
			s.Update(screentest.Key(string(rune('1' + wrong))))
			if !strings.Contains(s.View(80, 24), "Try again") {
				t.Error("a wrong pick should show a hint")
			}
		}
		_, cmd := s.Update(screentest.Key(string(rune('1' + right))))
		msgs = screentest.Drain(cmd)
		if !hasCheer(msgs) {
			t.Error("a right pick should be praised")
		}
	}

	o, ok := outcome(msgs)
	if !ok {
		t.Fatal("expected an outcome after the last round")
	}
	if o.Game != session.GameAssociation || o.ModuleID != "fruits" || len(o.Learned) != 2 {
		t.Errorf("unexpected outcome %+v", o)
	}
}

func TestAssociationEscLeaves(t *testing.T) {
	deps, _ := depsFor(t, "fruits")
	s := NewAssociation(deps)
	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("esc should go back")
	}
}

func TestMemoryMatchAndMismatch(t *testing.T) {
	deps, _ := depsFor(t, "fruits")
	s := NewMemory(deps)

	cards := s.game.Cards()
	pairs := map[string][]int{}
	for i, c := range cards {
		pairs[c.WordID] = append(pairs[c.WordID], i)
	}
	apple, banana := pairs["apple"], pairs["banana"]

	// Mismatch, then settle.
	s.cursor = apple[0]
	s.Update(screentest.Key("enter"))
	s.cursor = banana[0]
	_, cmd := s.Update(screentest.Key("enter"))
	if cmd == nil || !s.game.Pending() {
		t.Fatal("a mismatch should schedule a settle")
	}
	s.Update(settleMsg{gen: s.gen - 1})
	if !s.game.Pending() {
		t.Error("a stale settle must be ignored")
	}
	s.Update(settleMsg{gen: s.gen})
	if s.game.Pending() {
		t.Error("settle should turn the pair down")
	}

	var msgs []tea.Msg
	for _, p := range [][]int{apple, banana} {
		s.cursor = p[0]
		s.Update(screentest.Key("enter"))
		s.cursor = p[1]
		_, cmd := s.Update(screentest.Key("space"))
		msgs = screentest.Drain(cmd)
	}
	o, ok := outcome(msgs)
	if !ok || o.Points != games.MemoryPoints || o.Game != session.GameMemory {
		t.Errorf("expected a full memory outcome, got %+v (%v)", o, ok)
	}
	if !strings.Contains(s.View(80, 24), "Pairs 2 of 2") {
		t.Error("view should show the matched pairs")
	}
}

func TestMemoryCursorWraps(t *testing.T) {
	deps, _ := depsFor(t, "fruits")
	s := NewMemory(deps)
	s.Update(screentest.Key("left"))
	if s.cursor != len(s.game.Cards())-1 {
		t.Errorf("cursor = %d, want last card", s.cursor)
	}
}

func TestRepetition(t *testing.T) {
	deps, voice := depsFor(t, "fruits")
	s := NewRepetition(deps)
	screentest.Drain(s.Init())
	if len(voice.Said) == 0 || voice.Said[len(voice.Said)-1].Style != speech.StyleGuided {
		t.Fatal("the word should be spoken in guided style")
	}

	s.Update(screentest.Key("enter"))
	if !strings.Contains(s.View(80, 24), "press Enter") {
		t.Error("an empty answer should prompt the child")
	}

	var msgs []tea.Msg
	for range 2 {
		s.Update(screentest.Key("x"))
		_, cmd := s.Update(screentest.Key("enter"))
		msgs = screentest.Drain(cmd)
	}
	o, ok := outcome(msgs)
	if !ok || o.Game != session.GameRepetition || len(o.Learned) != 2 {
		t.Errorf("expected both words learned, got %+v (%v)", o, ok)
	}
}

func TestSequenceUnavailableWithoutPhrases(t *testing.T) {
	deps, _ := depsFor(t, "fruits")
	s := NewSequence(deps)
	if !strings.Contains(s.View(80, 24), "nothing to play") {
		t.Error("fruits has no sentences")
	}
}

func TestSequence(t *testing.T) {
	deps, _ := depsFor(t, "animals")
	s := NewSequence(deps)
	screentest.Drain(s.Init())

	seq := s.game.Sequence()
	want := make([]string, len(seq.Parts))
	for i, p := range seq.Parts {
		want[i] = p.WordID
	}

	pool := s.game.Pool()
	for i, p := range pool {
		if p.WordID == want[0] {
			s.cursor = i
		}
	}
	s.Update(screentest.Key("enter"))
	if len(s.game.Order()) != 1 {
		t.Fatal("expected one placed piece")
	}
	s.Update(screentest.Key("backspace"))
	if len(s.game.Order()) != 0 {
		t.Fatal("backspace should undo")
	}

	var msgs []tea.Msg
	for _, id := range want {
		for i, p := range s.game.Pool() {
			if p.WordID == id {
				s.cursor = i
			}
		}
		_, cmd := s.Update(screentest.Key("enter"))
		msgs = screentest.Drain(cmd)
	}
	if !hasCheer(msgs) {
		t.Error("a correct sentence should be praised")
	}
	if _, ok := outcome(msgs); !ok {
		t.Error("the only sentence should finish the game")
	}
}
