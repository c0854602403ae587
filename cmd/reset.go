package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase learned words, stars and stickers (settings are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Erase all progress for profile %q? Type yes to confirm: ", e.cfg.Profile)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(line)) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
				return nil
			}
		}

		if _, err := e.progress.ResetStats(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
