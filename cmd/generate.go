package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmma/lifeskills/internal/generator"
	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/llm"
	"github.com/pmma/lifeskills/internal/logger"
	"github.com/pmma/lifeskills/internal/storage"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a life skill module with AI and save it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		description, _ := cmd.Flags().GetString("description")
		ageGroup, _ := cmd.Flags().GetString("age-group")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		focusArea, _ := cmd.Flags().GetString("focus-area")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		mode, _ := cmd.Flags().GetString("log")
		log, err := logger.New(mode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gen := generator.New(provider, generator.DefaultConfig())
		module, err := gen.Generate(ctx, generator.Request{
			Topic:       topic,
			Description: description,
			AgeGroup:    lifeskill.AgeGroup(ageGroup),
			Difficulty:  generator.Difficulty(difficulty),
			FocusArea:   focusArea,
		})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if dryRun {
			out, err := json.MarshalIndent(module, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		kv, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		storage.NewContentStore(kv, log).Save(ctx, *module)
		fmt.Printf("Generated and saved %q (slug: %s)\n", module.Title, module.Slug)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("description", "", "Module description (defaults to a topic-based template)")
	generateCmd.Flags().String("age-group", "all", "Primary audience: young, teen, adult, or all")
	generateCmd.Flags().String("difficulty", "basic", "Depth: basic, intermediate, or advanced")
	generateCmd.Flags().String("focus-area", "character", "Emphasis, e.g. character or leadership")
	generateCmd.Flags().Bool("dry-run", false, "Print the module as JSON without saving")
}
