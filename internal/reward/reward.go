// Package reward decides which celebration follows a game and holds the
// active celebration for a fixed display window.
package reward

import "github.com/abhisek/wordgarden/internal/progress"

// Kind is a celebration.
type Kind string

const (
	None      Kind = "none"
	Confetti  Kind = "confetti"
	Fireworks Kind = "fireworks"
)

// FireworksThreshold is the minimum points for fireworks.
const FireworksThreshold = 50

// Decide picks the celebration for points under settings:
// nothing when animations are off, fireworks for big scores when enabled,
// otherwise confetti when enabled.
func Decide(points int, s progress.AppSettings) Kind {
	if !s.EnableAnimations {
		return None
	}
	if points >= FireworksThreshold && s.RewardEnabled(progress.RewardFireworks) {
		return Fireworks
	}
	if s.RewardEnabled(progress.RewardConfetti) {
		return Confetti
	}
	return None
}
