package session

import (
	"context"
	"fmt"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/progress"
)

// Stats returns a copy of the current stats.
func (e *Engine) Stats() progress.UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Clone()
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() progress.AppSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.Clone()
}

// Score is the points earned in this session only.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

func (e *Engine) SessionID() string { return e.sessionID }

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

func (e *Engine) Navigator() *nav.Navigator { return e.nav }

// Language is the session's learning language.
func (e *Engine) Language() catalog.Language {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.language
}

// SetLanguage switches the learning language. The choice is not persisted.
func (e *Engine) SetLanguage(lang catalog.Language) error {
	if _, ok := e.cat.Language(lang); !ok {
		return fmt.Errorf("session: unknown language %q", lang)
	}
	e.mu.Lock()
	e.language = lang
	e.mu.Unlock()
	e.log.Debug("language selected", "language", lang)
	return nil
}

// Mascot resolves the mascot for the current language and preference.
func (e *Engine) Mascot() catalog.Mascot {
	e.mu.Lock()
	lang, pref := e.language, e.settings.PreferredMascotID
	e.mu.Unlock()
	return e.cat.MascotFor(lang, pref)
}

// SelectModule makes id the current module. Locked modules are refused.
func (e *Engine) SelectModule(id string) error {
	idx := e.cat.ModuleIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}
	if !e.IsModuleUnlocked(idx) {
		return fmt.Errorf("%w: %s", ErrModuleLocked, id)
	}
	e.mu.Lock()
	e.moduleID = id
	e.mu.Unlock()
	return nil
}

// ModuleID is the selected module, or "" before any selection.
func (e *Engine) ModuleID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moduleID
}

// Module returns the selected module.
func (e *Engine) Module() (catalog.Module, error) {
	id := e.ModuleID()
	if id == "" {
		return catalog.Module{}, ErrNoModule
	}
	m, ok := e.cat.Module(id)
	if !ok {
		return catalog.Module{}, fmt.Errorf("%w: %s", ErrUnknownModule, id)
	}
	return m, nil
}

// Navigate moves to screen to when the edge exists.
func (e *Engine) Navigate(to nav.Screen) error {
	from := e.nav.Current()
	if err := e.nav.Go(to); err != nil {
		return err
	}
	e.log.Debug("navigate", "from", from, "to", to)
	return nil
}

// Current is the active screen.
func (e *Engine) Current() nav.Screen { return e.nav.Current() }

// Back moves to the parent screen. It reports false at the landing screen.
func (e *Engine) Back() (nav.Screen, bool) {
	from := e.nav.Current()
	to, ok := e.nav.Back()
	if ok {
		e.log.Debug("navigate back", "from", from, "to", to)
	}
	return to, ok
}

// StartGame opens g for the selected module.
func (e *Engine) StartGame(g Game) error {
	if e.ModuleID() == "" {
		return ErrNoModule
	}
	return e.Navigate(g.Screen())
}

// UpdateSettings replaces the settings and writes them through. A write
// failure is logged and returned; the in-memory settings still change.
func (e *Engine) UpdateSettings(ctx context.Context, s progress.AppSettings) error {
	e.mu.Lock()
	e.settings = s.Clone()
	e.mu.Unlock()

	if err := e.store.SaveSettings(ctx, s); err != nil {
		e.log.Warn("settings not persisted", "error", err)
		return err
	}
	return nil
}

// ResetProgress replaces the stats with a fresh record and writes it
// through. Settings and the session score are kept.
func (e *Engine) ResetProgress(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats = progress.DefaultStats(e.clock.Now())
	if err := e.store.SaveStats(ctx, e.stats.Clone()); err != nil {
		e.log.Warn("reset not persisted", "error", err)
		return err
	}
	e.log.Info("progress reset")
	return nil
}
