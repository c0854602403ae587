// Package report builds the parent-facing progress summary and renders it
// for the terminal, plain text and email.
package report

import (
	"time"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/session"
)

// MaxDayIcons caps the per-day icon row in the weekly chart.
const MaxDayIcons = 5

// Day is one bar of the weekly chart.
type Day struct {
	Label string
	Words int
	Stars int
}

// Icons is the number of icons drawn for the day.
func (d Day) Icons() int {
	return min(d.Words, MaxDayIcons)
}

// Word is a learned word with its display text.
type Word struct {
	ID    string
	Emoji string
	Text  string
}

// ModuleProgress summarizes one module.
type ModuleProgress struct {
	ID       string
	Title    string
	Icon     string
	Learned  int
	Total    int
	Unlocked bool
}

// Fraction returns Learned/Total, or 0 for an empty module.
func (m ModuleProgress) Fraction() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Learned) / float64(m.Total)
}

// Report is a snapshot of one child's progress.
type Report struct {
	GeneratedAt  time.Time
	Language     catalog.Language
	Minutes      int
	WordsLearned int
	Stars        int
	Stickers     int
	LastActive   time.Time
	Week         []Day
	MaxDaily     int
	Words        []Word
	Modules      []ModuleProgress
}

// Empty reports whether the child has not played yet.
func (r Report) Empty() bool {
	return len(r.Week) == 0 && r.WordsLearned == 0 && r.Minutes == 0
}

// Build assembles a report from stats. Learned words are listed in catalog
// order and rendered in lang. Ids the catalog does not know are counted but
// not listed.
func Build(stats progress.UserStats, cat *catalog.Catalog, lang catalog.Language, now time.Time) Report {
	r := Report{
		GeneratedAt:  now,
		Language:     lang,
		Minutes:      stats.TotalPracticeMinutes,
		WordsLearned: len(stats.LearnedWordIDs),
		Stars:        stats.StarsEarned,
		Stickers:     len(stats.UnlockedStickerIDs),
		LastActive:   stats.LastActive,
	}

	for _, d := range stats.History {
		r.Week = append(r.Week, Day{Label: d.Date, Words: d.WordsLearned, Stars: d.StarsEarned})
		r.MaxDaily = max(r.MaxDaily, d.WordsLearned)
	}

	learned := stats.LearnedSet()
	for _, w := range cat.Words {
		if _, ok := learned[w.ID]; ok {
			r.Words = append(r.Words, Word{ID: w.ID, Emoji: w.Emoji, Text: w.Text(lang)})
		}
	}

	for i, m := range cat.Modules {
		mp := ModuleProgress{
			ID:       m.ID,
			Title:    m.Title,
			Icon:     m.Icon,
			Total:    len(m.WordIDs),
			Unlocked: session.ModuleUnlocked(cat, i, learned),
		}
		for _, id := range m.WordIDs {
			if _, ok := learned[id]; ok {
				mp.Learned++
			}
		}
		r.Modules = append(r.Modules, mp)
	}
	return r
}
