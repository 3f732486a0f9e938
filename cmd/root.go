package cmd

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pmma/lifeskills/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "lifeskills",
	Short: "Life skills training content service",
	Long:  "Lifeskills — martial arts life skills training content: a static module library, AI generation, and an HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A missing .env file is fine; the environment itself still applies.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIFESKILLS_DB env var)")
	rootCmd.PersistentFlags().String("log", "dev", "Log mode: dev or prod")
	rootCmd.PersistentFlags().String("addr", ":8080", "Listen address for the HTTP server")
	rootCmd.PersistentFlags().Duration("gen-timeout", 60*time.Second, "Timeout for a single generation request")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LIFESKILLS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}
