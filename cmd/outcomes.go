package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/store"
)

var outcomesCmd = &cobra.Command{
	Use:   "outcomes",
	Short: "List recently finished games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.events.QueryOutcomes(cmd.Context(), store.QueryOpts{Limit: limit, SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("query outcomes: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-12s  %-4s  %6s  %-9s  %s\n",
			"Timestamp", "Game", "Module", "Lang", "Points", "Reward", "Learned")
		fmt.Println(strings.Repeat("─", 96))
		for _, ev := range events {
			fmt.Printf("%-19s  %-20s  %-12s  %-4s  %6d  %-9s  %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Game,
				ev.ModuleID,
				ev.Language,
				ev.Points,
				ev.Reward,
				strings.Join(ev.Learned, ","),
			)
		}
		return nil
	},
}

func init() {
	outcomesCmd.Flags().IntP("limit", "n", 20, "Number of games to show")
	outcomesCmd.Flags().String("session", "", "Only show games from this session ID")
}
