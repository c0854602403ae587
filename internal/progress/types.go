// Package progress defines the durable learner records and the store that
// loads and saves them through a key-value backend.
package progress

import (
	"slices"
	"time"
)

// HistoryLimit is the number of daily entries kept in UserStats.History.
const HistoryLimit = 7

// FontSize is the UI text size preference.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// ThemeIntensity controls how saturated the palette is.
type ThemeIntensity string

const (
	ThemeSoft    ThemeIntensity = "soft"
	ThemeNormal  ThemeIntensity = "normal"
	ThemeVibrant ThemeIntensity = "vibrant"
)

// RewardType is an opt-in reward feature.
type RewardType string

const (
	RewardStickers   RewardType = "stickers"
	RewardSounds     RewardType = "sounds"
	RewardAnimations RewardType = "animations"
	RewardConfetti   RewardType = "confetti"
	RewardFireworks  RewardType = "fireworks"
)

// AllRewardTypes lists every reward type in display order.
var AllRewardTypes = []RewardType{
	RewardStickers, RewardSounds, RewardAnimations, RewardConfetti, RewardFireworks,
}

// AppSettings holds accessibility and reward preferences.
type AppSettings struct {
	SchemaVersion     string         `json:"schemaVersion,omitempty"`
	FontSize          FontSize       `json:"fontSize"`
	HighContrast      bool           `json:"highContrast"`
	CalmMode          bool           `json:"calmMode"`
	AudioSpeed        float64        `json:"audioSpeed"`
	EnableAnimations  bool           `json:"enableAnimations"`
	EnableSounds      bool           `json:"enableSounds"`
	PreferredMascotID string         `json:"preferredMascotId"`
	EnabledRewards    []RewardType   `json:"enabledRewards"`
	ThemeIntensity    ThemeIntensity `json:"themeIntensity"`
}

// DefaultMascotID means "use the language's own mascot".
const DefaultMascotID = "default"

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() AppSettings {
	return AppSettings{
		SchemaVersion:     CurrentSchemaVersion,
		FontSize:          FontMedium,
		AudioSpeed:        1.0,
		EnableAnimations:  true,
		EnableSounds:      true,
		PreferredMascotID: DefaultMascotID,
		EnabledRewards:    defaultRewards(),
		ThemeIntensity:    ThemeNormal,
	}
}

func defaultRewards() []RewardType {
	return []RewardType{RewardStickers, RewardSounds, RewardAnimations, RewardConfetti}
}

// RewardEnabled reports whether r is in EnabledRewards.
func (s AppSettings) RewardEnabled(r RewardType) bool {
	return slices.Contains(s.EnabledRewards, r)
}

// WithReward returns a copy with r switched on or off.
func (s AppSettings) WithReward(r RewardType, on bool) AppSettings {
	rewards := slices.DeleteFunc(slices.Clone(s.EnabledRewards), func(x RewardType) bool { return x == r })
	if on {
		rewards = append(rewards, r)
	}
	s.EnabledRewards = rewards
	return s
}

// Clone returns a deep copy.
func (s AppSettings) Clone() AppSettings {
	s.EnabledRewards = slices.Clone(s.EnabledRewards)
	return s
}

// DailyProgress aggregates one day of play.
type DailyProgress struct {
	Date         string `json:"date"`
	WordsLearned int    `json:"wordsLearned"`
	StarsEarned  int    `json:"starsEarned"`
}

// UserStats is the durable learning record for one child.
type UserStats struct {
	SchemaVersion        string          `json:"schemaVersion,omitempty"`
	LearnedWordIDs       []string        `json:"learnedWordIds"`
	UnlockedStickerIDs   []string        `json:"unlockedStickerIds"`
	TotalPracticeMinutes int             `json:"totalPracticeMinutes"`
	LastActive           time.Time       `json:"lastActive"`
	StarsEarned          int             `json:"starsEarned"`
	History              []DailyProgress `json:"history"`
}

// DefaultStats returns an empty record last active at now.
func DefaultStats(now time.Time) UserStats {
	return UserStats{
		SchemaVersion:      CurrentSchemaVersion,
		LearnedWordIDs:     []string{},
		UnlockedStickerIDs: []string{},
		LastActive:         now,
		History:            []DailyProgress{},
	}
}

// Clone returns a deep copy.
func (s UserStats) Clone() UserStats {
	s.LearnedWordIDs = slices.Clone(s.LearnedWordIDs)
	s.UnlockedStickerIDs = slices.Clone(s.UnlockedStickerIDs)
	s.History = slices.Clone(s.History)
	return s
}

// HasLearned reports whether id is in the learned set.
func (s UserStats) HasLearned(id string) bool {
	return slices.Contains(s.LearnedWordIDs, id)
}

// LearnedSet returns the learned ids as a set.
func (s UserStats) LearnedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.LearnedWordIDs))
	for _, id := range s.LearnedWordIDs {
		set[id] = struct{}{}
	}
	return set
}

// AddLearned unions ids into LearnedWordIDs, keeping first-seen order.
func (s *UserStats) AddLearned(ids []string) {
	seen := s.LearnedSet()
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		s.LearnedWordIDs = append(s.LearnedWordIDs, id)
	}
}

// RecordDay folds words and stars into the entry labelled date, appending
// a new entry when none matches, then evicts the oldest entries beyond
// HistoryLimit.
func (s *UserStats) RecordDay(date string, words, stars int) {
	idx := slices.IndexFunc(s.History, func(d DailyProgress) bool { return d.Date == date })
	if idx >= 0 {
		s.History[idx].WordsLearned += words
		s.History[idx].StarsEarned += stars
	} else {
		s.History = append(s.History, DailyProgress{Date: date, WordsLearned: words, StarsEarned: stars})
	}
	if over := len(s.History) - HistoryLimit; over > 0 {
		s.History = slices.Clone(s.History[over:])
	}
}
