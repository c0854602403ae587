package album

import (
	"strings"
	"testing"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen/screentest"
)

func TestCollectedIgnoresUnknownWords(t *testing.T) {
	var stats progress.UserStats
	stats.UnlockedStickerIDs = []string{"apple", "unicorn"}
	if got := Collected(stats, catalog.Default()); got != 1 {
		t.Errorf("Collected = %d, want 1", got)
	}
}

func TestShowsUnlockedStickers(t *testing.T) {
	deps, _ := screentest.Deps(t)
	s := New(deps)
	if !strings.Contains(s.View(100, 30), "0 of 6 stickers") {
		t.Error("a fresh album should be empty")
	}

	screentest.Learn(t, deps, "fruits")
	view := s.View(100, 30)
	if !strings.Contains(view, "2 of 6 stickers") {
		t.Errorf("expected two stickers, view:\n%s", view)
	}
	if !strings.Contains(view, "🍎") {
		t.Error("the apple sticker should show")
	}
}

func TestPaging(t *testing.T) {
	deps, _ := screentest.Deps(t)
	s := New(deps)

	s.Update(screentest.Key("left"))
	if s.page != len(deps.Engine.Catalog().Modules)-1 {
		t.Errorf("page = %d, want the last page", s.page)
	}
	s.Update(screentest.Key("right"))
	if s.page != 0 {
		t.Errorf("page = %d, want 0", s.page)
	}

	_, cmd := s.Update(screentest.Key("esc"))
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Error("esc should go back")
	}
}
