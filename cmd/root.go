package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/config"
	"github.com/abhisek/wordgarden/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordgarden",
	Short: "Vocabulary garden for young language learners",
	Long:  "Word Garden: a terminal app where children grow a vocabulary through four short games.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides WORDGARDEN_DB)")
	pf.String("store", "", "Progress store backend: sqlite, redis or memory (overrides WORDGARDEN_STORE)")
	pf.String("redis-addr", "", "Redis address for the redis store (overrides WORDGARDEN_REDIS_ADDR)")
	pf.String("profile", "", "Learner profile name (overrides WORDGARDEN_PROFILE)")
	pf.String("catalog", "", "Path to a catalog YAML file (default: built-in catalog)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides WORDGARDEN_LOG_LEVEL)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(outcomesCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		cfg.Store.DBPath = v
	}
	if v, _ := flags.GetString("store"); v != "" {
		cfg.Store.Backend = v
	}
	if v, _ := flags.GetString("redis-addr"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v, _ := flags.GetString("profile"); v != "" {
		cfg.Profile = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, cfg.Validate()
}

// resolveDBPath returns the database path from config, then
// WORDGARDEN_DB, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if p := cfg.Store.DBPath; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
