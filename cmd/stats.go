package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := parseLang(cmd)
		if err != nil {
			return err
		}
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		r := report.Build(e.progress.LoadStats(cmd.Context()), e.catalog, lang, time.Now())
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Print(report.Text(r))
			return nil
		}
		fmt.Println(report.Terminal(r, 72))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("lang", "", "Language for word names (default pt)")
	statsCmd.Flags().Bool("plain", false, "Print without colors")
}
