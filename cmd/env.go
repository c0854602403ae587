package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/config"
	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/reward"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/store"
)

// memoryDSN keeps the event journal in memory for the memory backend.
const memoryDSN = "file:wordgarden?mode=memory&cache=shared"

// env is what every command shares: configuration, logging, the event
// journal and the progress store.
type env struct {
	cfg      config.Config
	log      *logger.Logger
	catalog  *catalog.Catalog
	db       *store.Store
	events   store.EventRepo
	progress *progress.Store
	closers  []func() error
}

// openEnv builds the shared environment. With toFile the log goes to the
// log file, keeping the terminal clean for the TUI.
func openEnv(cmd *cobra.Command, toFile bool) (*env, error) {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logOpts := logger.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level, Path: cfg.Log.Path}
	if toFile && logOpts.Path == "" {
		if logOpts.Path, err = logger.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if !toFile && !cmd.Flags().Changed("log-level") && os.Getenv("WORDGARDEN_LOG_LEVEL") == "" {
		logOpts.Level = "warn"
	}
	log, err := logger.NewWithOptions(logOpts)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	e := &env{cfg: cfg, log: log}
	e.closers = append(e.closers, func() error { log.Sync(); return nil })

	if e.catalog, err = loadCatalog(cmd); err != nil {
		e.Close()
		return nil, err
	}

	dsn := memoryDSN
	if cfg.Store.Backend != config.BackendMemory {
		if dsn, err = resolveDBPath(cfg); err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	if e.db, err = store.Open(dsn); err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, e.db.Close)
	e.events = e.db.EventRepo()

	kv, err := e.openKV(ctx)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.progress = progress.NewStore(kv, log, progress.WithKeyPrefix(cfg.KeyPrefix()))

	log.Debug("environment ready",
		"backend", cfg.Store.Backend,
		"profile", cfg.Profile,
		"db", dsn,
	)
	return e, nil
}

func (e *env) openKV(ctx context.Context) (store.KV, error) {
	switch e.cfg.Store.Backend {
	case config.BackendRedis:
		kv, err := store.NewRedisKV(ctx, store.RedisOptions{
			Addr:     e.cfg.Store.RedisAddr,
			Password: e.cfg.Store.RedisPassword,
			DB:       e.cfg.Store.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		e.closers = append(e.closers, kv.Close)
		return kv, nil
	case config.BackendMemory:
		return store.NewMemoryKV(), nil
	}
	return e.db.KV(), nil
}

// Close releases everything in reverse order.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.log.Warn("close", "error", err)
		}
	}
	e.closers = nil
}

// newEngine starts a session over the environment's stores.
func (e *env) newEngine(ctx context.Context, display *reward.Display) (*session.Engine, error) {
	return session.New(ctx, session.Options{
		Store:   e.progress,
		Catalog: e.catalog,
		Log:     e.log,
		Journal: e.events,
		Display: display,
		Days:    progress.NewWeekdayLabeler(e.cfg.Locale, nil),
	})
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// parseLang resolves a --lang flag value.
func parseLang(cmd *cobra.Command) (catalog.Language, error) {
	code, _ := cmd.Flags().GetString("lang")
	if code == "" {
		return catalog.DefaultLanguage, nil
	}
	lang, ok := catalog.ParseLanguage(code)
	if !ok {
		return "", fmt.Errorf("unknown language %q", code)
	}
	return lang, nil
}
