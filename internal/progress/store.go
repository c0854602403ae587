package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/store"
)

// DefaultKeyPrefix namespaces the two durable entries.
const DefaultKeyPrefix = "wordgarden_"

// maxWriteAttempts bounds KV writes: the first try plus one retry.
const maxWriteAttempts = 2

// Store loads and saves UserStats and AppSettings as JSON entries in a KV.
type Store struct {
	kv          store.KV
	log         *logger.Logger
	settingsKey string
	statsKey    string
	now         func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix replaces DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.settingsKey = prefix + "settings"
		s.statsKey = prefix + "stats"
	}
}

// WithClock sets the time source used for fresh records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store over kv. A nil log discards output.
func NewStore(kv store.KV, log *logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		kv:  kv,
		log: log.With("component", "progress"),
		now: time.Now,
	}
	WithKeyPrefix(DefaultKeyPrefix)(s)
	for _, o := range opts {
		o(s)
	}
	return s
}

// Keys returns the settings and stats key names.
func (s *Store) Keys() (settingsKey, statsKey string) {
	return s.settingsKey, s.statsKey
}

// Load reads both records. A missing entry, or one that is not a JSON
// object, falls back to defaults. Otherwise each field is decoded on its
// own over the defaults, and a field of the wrong type is dropped alone.
// Load never fails.
func (s *Store) Load(ctx context.Context) (UserStats, AppSettings) {
	return s.LoadStats(ctx), s.LoadSettings(ctx)
}

// LoadSettings reads the settings record, merged over defaults.
func (s *Store) LoadSettings(ctx context.Context) AppSettings {
	settings := DefaultSettings()
	settings.SchemaVersion = ""

	raw, ok := s.read(ctx, s.settingsKey)
	if !ok {
		return DefaultSettings()
	}
	if !decode(s.log, s.settingsKey, raw, &settings) {
		return DefaultSettings()
	}

	res := applySchema(&settings.SchemaVersion, &settings, settingsUpgrades)
	s.logUpgrade(s.settingsKey, res)
	normalizeSettings(&settings)
	return settings
}

// LoadStats reads the stats record, merged over defaults.
func (s *Store) LoadStats(ctx context.Context) UserStats {
	stats := DefaultStats(s.now())
	stats.SchemaVersion = ""

	raw, ok := s.read(ctx, s.statsKey)
	if !ok {
		return DefaultStats(s.now())
	}
	if !decode(s.log, s.statsKey, raw, &stats) {
		return DefaultStats(s.now())
	}

	res := applySchema(&stats.SchemaVersion, &stats, statsUpgrades)
	s.logUpgrade(s.statsKey, res)
	normalizeStats(&stats)
	return stats
}

// decode reports false when raw is not a JSON object.
func decode[T any](log *logger.Logger, key, raw string, dst *T) bool {
	dropped, err := decodeFields(raw, dst)
	if err != nil {
		log.Warn("discarding malformed record", "key", key, "error", err)
		return false
	}
	for _, f := range dropped {
		log.Warn("dropping malformed field", "key", key, "field", f.name, "error", f.err)
	}
	return true
}

type droppedField struct {
	name string
	err  error
}

// decodeFields unmarshals each member of the JSON object raw into dst
// separately. A member that does not decode leaves dst untouched.
func decodeFields[T any](raw string, dst *T) ([]droppedField, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}

	var dropped []droppedField
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		one, err := json.Marshal(map[string]json.RawMessage{name: fields[name]})
		if err != nil {
			dropped = append(dropped, droppedField{name, err})
			continue
		}
		var check T
		if err := json.Unmarshal(one, &check); err != nil {
			dropped = append(dropped, droppedField{name, err})
			continue
		}
		_ = json.Unmarshal(one, dst)
	}
	return dropped, nil
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		s.log.Warn("read failed, using defaults", "key", key, "error", err)
		return "", false
	}
	return raw, true
}

func (s *Store) logUpgrade(key string, res upgradeResult) {
	switch {
	case res.Newer:
		s.log.Warn("record written by a newer version, loading best-effort", "key", key, "version", res.From)
	case res.Applied > 0:
		s.log.Info("upgraded record schema", "key", key, "from", res.From, "to", CurrentSchemaVersion, "steps", res.Applied)
	}
}

// SaveSettings overwrites the settings record.
func (s *Store) SaveSettings(ctx context.Context, settings AppSettings) error {
	if settings.SchemaVersion == "" {
		settings.SchemaVersion = CurrentSchemaVersion
	}
	return s.write(ctx, s.settingsKey, settings)
}

// SaveStats overwrites the stats record.
func (s *Store) SaveStats(ctx context.Context, stats UserStats) error {
	if stats.SchemaVersion == "" {
		stats.SchemaVersion = CurrentSchemaVersion
	}
	return s.write(ctx, s.statsKey, stats)
}

// ResetStats overwrites the stats record with a fresh one and returns it.
// Settings are untouched.
func (s *Store) ResetStats(ctx context.Context) (UserStats, error) {
	fresh := DefaultStats(s.now())
	if err := s.SaveStats(ctx, fresh); err != nil {
		return fresh, err
	}
	s.log.Info("stats reset", "key", s.statsKey)
	return fresh, nil
}

// write serialises v and stores it, retrying once. Failures are logged
// and returned; callers treat them as non-fatal.
func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		if lastErr = s.kv.Set(ctx, key, string(data)); lastErr == nil {
			return nil
		}
		s.log.Warn("write failed", "key", key, "attempt", attempt, "error", lastErr)
		if ctx.Err() != nil {
			break
		}
	}
	s.log.Error("giving up on write", "key", key, "error", lastErr)
	return fmt.Errorf("save %s: %w", key, lastErr)
}
