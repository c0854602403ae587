package reward

import (
	"testing"

	"github.com/abhisek/wordgarden/internal/progress"
)

func settingsWith(animations bool, rewards ...progress.RewardType) progress.AppSettings {
	s := progress.DefaultSettings()
	s.EnableAnimations = animations
	s.EnabledRewards = rewards
	return s
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		settings progress.AppSettings
		want     Kind
	}{
		{"fireworks at threshold", 60, settingsWith(true, progress.RewardFireworks, progress.RewardConfetti), Fireworks},
		{"exactly fifty", 50, settingsWith(true, progress.RewardFireworks), Fireworks},
		{"below threshold falls to confetti", 10, settingsWith(true, progress.RewardConfetti), Confetti},
		{"below threshold without confetti", 49, settingsWith(true, progress.RewardFireworks), None},
		{"big score without fireworks", 60, settingsWith(true, progress.RewardConfetti), Confetti},
		{"animations off", 60, settingsWith(false, progress.RewardFireworks, progress.RewardConfetti), None},
		{"nothing enabled", 60, settingsWith(true), None},
		{"zero points confetti", 0, settingsWith(true, progress.RewardConfetti), Confetti},
		{"defaults", 100, progress.DefaultSettings(), Confetti},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.points, tt.settings); got != tt.want {
				t.Errorf("Decide(%d) = %q, want %q", tt.points, got, tt.want)
			}
		})
	}
}
