package cmd

import (
	"github.com/abhisek/learnpy/internal/config"
	"github.com/abhisek/learnpy/internal/kv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnpy",
	Short: "Learn Python in your terminal",
	Long:  "learnpy: interactive Python lessons, quizzes, and progress tracking, all in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNPY_DB env var)")
	rootCmd.PersistentFlags().String("lessons", "", "Path to a lessons JSON file (overrides the built-in catalog)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep all data in memory, nothing is written to disk")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the LEARNPY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, kv.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, kv.EnsureDir(cfg.DBPath)
	}
	return kv.DefaultDBPath()
}
