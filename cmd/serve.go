package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pmma/lifeskills/internal/app"
	"github.com/pmma/lifeskills/internal/generator"
	"github.com/pmma/lifeskills/internal/llm"
	"github.com/pmma/lifeskills/internal/logger"
	"github.com/pmma/lifeskills/internal/server"
	"github.com/pmma/lifeskills/internal/state"
	"github.com/pmma/lifeskills/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds dependencies, and serves until
// interrupted. Also the root command's default behavior.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode, _ := cmd.Flags().GetString("log")
	log, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	kv, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		log.Warn("LLM provider not configured; generation requests will fail", "error", err.Error())
		provider = llm.NewMockProvider()
	}

	a := app.New(
		state.NewStore(),
		storage.NewContentStore(kv, log),
		generator.New(provider, generator.DefaultConfig()),
		log,
	)
	a.SeedDemoData()
	a.LoadLifeSkills(ctx)

	addr, _ := cmd.Flags().GetString("addr")
	genTimeout, _ := cmd.Flags().GetDuration("gen-timeout")

	router := server.NewRouter(a, log, genTimeout)
	return server.NewServer(addr, router, log).Run(ctx)
}
