package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or validate the word catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules, their words and prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := parseLang(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		for i, m := range c.Modules {
			fmt.Printf("%s %s (%s)\n", m.Icon, m.Title, m.ID)
			if pre := c.Prerequisites(i); len(pre) > 0 {
				ids := make([]string, len(pre))
				for j, p := range pre {
					ids[j] = p.ID
				}
				fmt.Printf("   requires: %s\n", strings.Join(ids, ", "))
			}
			for _, w := range c.ModuleWords(m) {
				fmt.Printf("   %s %-12s %s\n", w.Emoji, w.ID, w.Text(lang))
			}
			for _, s := range c.ModuleSequences(m) {
				fmt.Printf("   ↪ %s: %s\n", s.ID, s.PhraseTranslations[lang])
			}
		}
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a catalog YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		c, err := catalog.Load(f)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		fmt.Printf("%s: %d words, %d sentences, %d modules, %d languages: ok\n",
			args[0], len(c.Words), len(c.Sequences), len(c.Modules), len(c.Languages))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("lang", "", "Language for word names (default pt)")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
}
