package progress

import (
	"slices"

	"golang.org/x/mod/semver"
)

// CurrentSchemaVersion is stamped on every record this build writes.
const CurrentSchemaVersion = "v1.1.0"

// baseSchemaVersion is assumed for records written before versioning.
const baseSchemaVersion = "v1.0.0"

// upgrade is one schema step. It runs on records older than version.
type upgrade[T any] struct {
	version string
	apply   func(*T)
}

var settingsUpgrades = []upgrade[AppSettings]{
	{
		// Mascot, reward and theme preferences arrived together. Old records
		// may carry them as null or empty.
		version: "v1.1.0",
		apply: func(s *AppSettings) {
			if s.PreferredMascotID == "" {
				s.PreferredMascotID = DefaultMascotID
			}
			if s.EnabledRewards == nil {
				s.EnabledRewards = defaultRewards()
			}
			if s.ThemeIntensity == "" {
				s.ThemeIntensity = ThemeNormal
			}
		},
	},
}

var statsUpgrades = []upgrade[UserStats]{
	{
		version: "v1.1.0",
		apply: func(s *UserStats) {
			s.LearnedWordIDs = dedupe(s.LearnedWordIDs)
			s.UnlockedStickerIDs = dedupe(s.UnlockedStickerIDs)
			if over := len(s.History) - HistoryLimit; over > 0 {
				s.History = slices.Clone(s.History[over:])
			}
		},
	},
}

// upgradeResult reports what applySchema did.
type upgradeResult struct {
	From    string
	Applied int
	Newer   bool
}

// applySchema runs every step newer than the record's version and stamps
// the current version. Records from a newer build are left as decoded.
func applySchema[T any](version *string, rec *T, steps []upgrade[T]) upgradeResult {
	from := *version
	if !semver.IsValid(from) {
		from = baseSchemaVersion
	}
	res := upgradeResult{From: from}
	if semver.Compare(from, CurrentSchemaVersion) > 0 {
		res.Newer = true
		return res
	}
	for _, step := range steps {
		if semver.Compare(from, step.version) < 0 {
			step.apply(rec)
			res.Applied++
		}
	}
	*version = CurrentSchemaVersion
	return res
}

func dedupe(ids []string) []string {
	if ids == nil {
		return []string{}
	}
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

// normalizeSettings repairs out-of-range values left by schema drift.
func normalizeSettings(s *AppSettings) {
	switch s.FontSize {
	case FontSmall, FontMedium, FontLarge:
	default:
		s.FontSize = FontMedium
	}
	switch s.ThemeIntensity {
	case ThemeSoft, ThemeNormal, ThemeVibrant:
	default:
		s.ThemeIntensity = ThemeNormal
	}
	if s.AudioSpeed <= 0 {
		s.AudioSpeed = 1.0
	}
	if s.PreferredMascotID == "" {
		s.PreferredMascotID = DefaultMascotID
	}
	if s.EnabledRewards == nil {
		s.EnabledRewards = defaultRewards()
	}
}

// normalizeStats repairs nil slices and negative counters.
func normalizeStats(s *UserStats) {
	if s.LearnedWordIDs == nil {
		s.LearnedWordIDs = []string{}
	}
	if s.UnlockedStickerIDs == nil {
		s.UnlockedStickerIDs = []string{}
	}
	if s.History == nil {
		s.History = []DailyProgress{}
	}
	if s.TotalPracticeMinutes < 0 {
		s.TotalPracticeMinutes = 0
	}
}
