package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/progress"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change accessibility and reward settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()
		printSettings(e.progress.LoadSettings(cmd.Context()))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Change settings",
	Long: `Change settings. Keys:
  font-size      small | medium | large
  high-contrast  true | false
  calm-mode      true | false
  audio-speed    0.5 to 2.0
  animations     true | false
  sounds         true | false
  mascot         mascot id or "default"
  theme          soft | normal | vibrant
  rewards        comma list of stickers, sounds, animations, confetti, fireworks`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		s := e.progress.LoadSettings(cmd.Context())
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected key=value, got %q", arg)
			}
			if err := applySetting(&s, e.catalog, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				return err
			}
		}
		if err := e.progress.SaveSettings(cmd.Context(), s); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		printSettings(s)
		return nil
	},
}

// applySetting parses value into the field named by key.
func applySetting(s *progress.AppSettings, cat *catalog.Catalog, key, value string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s: expected true or false, got %q", key, value)
		}
		return b, nil
	}

	var err error
	switch key {
	case "font-size":
		fs := progress.FontSize(value)
		if !slices.Contains([]progress.FontSize{progress.FontSmall, progress.FontMedium, progress.FontLarge}, fs) {
			return fmt.Errorf("font-size: unknown size %q", value)
		}
		s.FontSize = fs
	case "high-contrast":
		s.HighContrast, err = parseBool()
	case "calm-mode":
		s.CalmMode, err = parseBool()
	case "animations":
		s.EnableAnimations, err = parseBool()
	case "sounds":
		s.EnableSounds, err = parseBool()
	case "audio-speed":
		f, perr := strconv.ParseFloat(value, 64)
		if perr != nil || f < 0.5 || f > 2.0 {
			return fmt.Errorf("audio-speed: expected a number from 0.5 to 2.0, got %q", value)
		}
		s.AudioSpeed = f
	case "mascot":
		if value != progress.DefaultMascotID {
			if _, ok := cat.Mascot(value); !ok {
				return fmt.Errorf("mascot: unknown mascot %q", value)
			}
		}
		s.PreferredMascotID = value
	case "theme":
		ti := progress.ThemeIntensity(value)
		if !slices.Contains([]progress.ThemeIntensity{progress.ThemeSoft, progress.ThemeNormal, progress.ThemeVibrant}, ti) {
			return fmt.Errorf("theme: unknown intensity %q", value)
		}
		s.ThemeIntensity = ti
	case "rewards":
		rewards := []progress.RewardType{}
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			r := progress.RewardType(part)
			if !slices.Contains(progress.AllRewardTypes, r) {
				return fmt.Errorf("rewards: unknown reward %q", part)
			}
			if !slices.Contains(rewards, r) {
				rewards = append(rewards, r)
			}
		}
		s.EnabledRewards = rewards
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return err
}

func printSettings(s progress.AppSettings) {
	rewards := make([]string, len(s.EnabledRewards))
	for i, r := range s.EnabledRewards {
		rewards[i] = string(r)
	}
	fmt.Printf("font-size      %s\n", s.FontSize)
	fmt.Printf("high-contrast  %t\n", s.HighContrast)
	fmt.Printf("calm-mode      %t\n", s.CalmMode)
	fmt.Printf("audio-speed    %.2g\n", s.AudioSpeed)
	fmt.Printf("animations     %t\n", s.EnableAnimations)
	fmt.Printf("sounds         %t\n", s.EnableSounds)
	fmt.Printf("mascot         %s\n", s.PreferredMascotID)
	fmt.Printf("theme          %s\n", s.ThemeIntensity)
	fmt.Printf("rewards        %s\n", strings.Join(rewards, ","))
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
