// Package session owns the live learning session: it folds game outcomes
// into the durable stats, gates modules, and accrues practice time.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/reward"
	"github.com/abhisek/wordgarden/internal/store"
)

var (
	ErrUnknownModule = errors.New("session: unknown module")
	ErrModuleLocked  = errors.New("session: module is locked")
	ErrNoModule      = errors.New("session: no module selected")
)

// Options carries the engine's collaborators. Store and Catalog are
// required; the rest default.
type Options struct {
	Store   ProgressStore
	Catalog *catalog.Catalog
	Clock   Clock
	Days    progress.DayLabeler
	Log     *logger.Logger

	// Journal, when set, receives every recorded outcome.
	Journal Journal

	// Display, when set, is shown the reward for every recorded outcome.
	Display *reward.Display

	// TickInterval overrides DefaultTickInterval.
	TickInterval time.Duration
}

// Engine is one learning session. All methods are safe for concurrent use.
type Engine struct {
	store        ProgressStore
	cat          *catalog.Catalog
	clock        Clock
	days         progress.DayLabeler
	log          *logger.Logger
	journal      Journal
	display      *reward.Display
	nav          *nav.Navigator
	sessionID    string
	tickInterval time.Duration

	mu         sync.Mutex
	stats      progress.UserStats
	settings   progress.AppSettings
	language   catalog.Language
	moduleID   string
	score      int
	tickOrigin time.Time
	stopTicker context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

// New loads the durable records and starts a session at the landing screen.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("session: progress store is required")
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("session: catalog is required")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Days == nil {
		opts.Days = progress.NewWeekdayLabeler(progress.DefaultLocale, nil)
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	stats, settings := opts.Store.Load(ctx)
	id := uuid.New().String()

	e := &Engine{
		store:        opts.Store,
		cat:          opts.Catalog,
		clock:        opts.Clock,
		days:         opts.Days,
		log:          opts.Log.With("component", "session", "session", id),
		journal:      opts.Journal,
		display:      opts.Display,
		nav:          nav.New(),
		sessionID:    id,
		tickInterval: opts.TickInterval,
		stats:        stats,
		settings:     settings,
		language:     catalog.DefaultLanguage,
		tickOrigin:   opts.Clock.Now(),
	}
	e.log.Info("session started",
		"learned", len(stats.LearnedWordIDs),
		"stars", stats.StarsEarned,
		"minutes", stats.TotalPracticeMinutes,
	)
	return e, nil
}

// RecordOutcome folds a finished game into the stats, persists them and
// returns the celebration to show. Steps run as one critical section.
func (e *Engine) RecordOutcome(ctx context.Context, o Outcome) reward.Kind {
	learned := uniqueIDs(o.Learned)

	e.mu.Lock()
	e.stats.AddLearned(learned)
	e.stats.RecordDay(e.days.Label(e.clock.Now()), len(learned), o.Points)
	if e.settings.RewardEnabled(progress.RewardStickers) {
		e.stats.UnlockedStickerIDs = slices.Clone(e.stats.LearnedWordIDs)
	}
	e.score += o.Points
	e.stats.StarsEarned += o.Points
	e.persistStatsLocked(ctx)

	settings := e.settings
	lang := e.language
	e.mu.Unlock()

	kind := reward.Decide(o.Points, settings)
	if e.display != nil {
		e.display.Show(kind)
	}

	e.log.Info("outcome recorded",
		"game", o.Game, "module", o.ModuleID, "points", o.Points,
		"learned", len(learned), "reward", kind,
	)

	if e.journal != nil {
		err := e.journal.AppendOutcome(ctx, store.OutcomeEventData{
			SessionID: e.sessionID,
			Game:      string(o.Game),
			ModuleID:  o.ModuleID,
			Language:  string(lang),
			Points:    o.Points,
			Learned:   learned,
			Reward:    string(kind),
		})
		if err != nil {
			e.log.Warn("outcome not journaled", "error", err)
		}
	}
	return kind
}

// FinishGame records o and returns to the module overview. It only works
// from the screen hosting o.Game; anywhere else it returns
// nav.ErrInvalidTransition and credits nothing.
func (e *Engine) FinishGame(ctx context.Context, o Outcome) (reward.Kind, error) {
	cur := e.nav.Current()
	if !cur.IsGame() || (o.Game != "" && o.Game.Screen() != cur) || !nav.Allowed(cur, nav.ModuleOverview) {
		return reward.None, fmt.Errorf("%w: finish %s from %s", nav.ErrInvalidTransition, o.Game, cur)
	}
	kind := e.RecordOutcome(ctx, o)
	if err := e.nav.Go(nav.ModuleOverview); err != nil {
		return kind, err
	}
	return kind, nil
}

// IsModuleUnlocked reports whether the module at index may be played.
func (e *Engine) IsModuleUnlocked(index int) bool {
	e.mu.Lock()
	learned := e.stats.LearnedSet()
	e.mu.Unlock()
	return ModuleUnlocked(e.cat, index, learned)
}

// UnlockedModules returns the unlock state of every module in order.
func (e *Engine) UnlockedModules() []bool {
	e.mu.Lock()
	learned := e.stats.LearnedSet()
	e.mu.Unlock()

	out := make([]bool, len(e.cat.Modules))
	for i := range out {
		out[i] = ModuleUnlocked(e.cat, i, learned)
	}
	return out
}

// ModuleUnlocked reports whether the module at index is open given the
// learned word set. The first module is always open. Any other module is
// open when every prerequisite shares at least one word with learned.
func ModuleUnlocked(c *catalog.Catalog, index int, learned map[string]struct{}) bool {
	if index < 0 || index >= len(c.Modules) {
		return false
	}
	if index == 0 {
		return true
	}
	for _, p := range c.Prerequisites(index) {
		if !intersects(p.WordIDs, learned) {
			return false
		}
	}
	return true
}

func intersects(ids []string, set map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

// TickPracticeTime credits whole minutes of elapsed time. Under a minute
// nothing changes and the origin stays put, so the remainder is retried
// on the next tick. Returns the minutes credited.
func (e *Engine) TickPracticeTime(ctx context.Context, elapsed time.Duration) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tickLocked(ctx, elapsed)
}

// Tick credits the time elapsed since the tick origin.
func (e *Engine) Tick(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0
	}
	return e.tickLocked(ctx, e.clock.Now().Sub(e.tickOrigin))
}

func (e *Engine) tickLocked(ctx context.Context, elapsed time.Duration) int {
	minutes := int(elapsed / time.Minute)
	if minutes < 1 {
		return 0
	}
	now := e.clock.Now()
	e.stats.TotalPracticeMinutes += minutes
	e.stats.LastActive = now
	e.tickOrigin = now
	e.persistStatsLocked(ctx)
	e.log.Debug("practice time credited", "minutes", minutes, "total", e.stats.TotalPracticeMinutes)
	return minutes
}

// StartPracticeTimer runs Tick every tick interval until ctx is done, the
// returned stop func is called, or the engine is closed. Starting again
// replaces the previous timer.
func (e *Engine) StartPracticeTimer(ctx context.Context) (stop func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return func() {}
	}
	if e.stopTicker != nil {
		e.stopTicker()
	}
	tctx, cancel := context.WithCancel(ctx)
	e.stopTicker = cancel
	interval := e.tickInterval
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-tctx.Done():
				return
			case <-t.C:
				if tctx.Err() != nil {
					return
				}
				e.Tick(tctx)
			}
		}
	}()
	return cancel
}

// Close stops the practice timer and the reward display and waits for the
// timer goroutine to exit. No tick runs after Close returns.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.stopTicker != nil {
		e.stopTicker()
		e.stopTicker = nil
	}
	e.mu.Unlock()

	e.wg.Wait()
	if e.display != nil {
		e.display.Stop()
	}
	e.log.Info("session closed", "score", e.Score())
}

// persistStatsLocked writes the stats through. Failures are logged by the
// store and never surface to the caller.
func (e *Engine) persistStatsLocked(ctx context.Context) {
	if err := e.store.SaveStats(ctx, e.stats.Clone()); err != nil {
		e.log.Warn("stats not persisted", "error", err)
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
