package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the parent progress report",
}

var reportEmailCmd = &cobra.Command{
	Use:   "email",
	Short: "Email the report through Amazon SES",
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			return errors.New("--to is required")
		}
		r, e, err := buildReport(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		mailer, err := report.NewMailer(cmd.Context(), e.cfg.Email, e.log)
		if err != nil {
			return err
		}
		if err := mailer.Send(cmd.Context(), to, r); err != nil {
			return err
		}
		fmt.Printf("Report sent to %s.\n", to)
		return nil
	},
}

var reportHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Print the report as HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, e, err := buildReport(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		html, err := report.HTML(r)
		if err != nil {
			return err
		}
		fmt.Print(html)
		return nil
	},
}

// buildReport loads the stats and builds the report. The caller closes
// the returned env.
func buildReport(cmd *cobra.Command) (report.Report, *env, error) {
	lang, err := parseLang(cmd)
	if err != nil {
		return report.Report{}, nil, err
	}
	e, err := openEnv(cmd, false)
	if err != nil {
		return report.Report{}, nil, err
	}
	return report.Build(e.progress.LoadStats(cmd.Context()), e.catalog, lang, time.Now()), e, nil
}

func init() {
	reportCmd.PersistentFlags().String("lang", "", "Language for word names (default pt)")
	reportEmailCmd.Flags().String("to", "", "Recipient email address")

	reportCmd.AddCommand(reportEmailCmd)
	reportCmd.AddCommand(reportHTMLCmd)
}
