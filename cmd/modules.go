package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmma/lifeskills/internal/content"
	"github.com/pmma/lifeskills/internal/logger"
	"github.com/pmma/lifeskills/internal/storage"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage life skill modules",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List static and stored modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cs, closeStore, err := openContentStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Printf("%-20s  %-30s  %-9s  %s\n", "ID", "Title", "Source", "Updated")
		fmt.Println(strings.Repeat("─", 80))

		for _, m := range content.All() {
			fmt.Printf("%-20s  %-30s  %-9s  %s\n", m.ID, truncate(m.Title, 30), "static", "-")
		}
		for _, m := range cs.List(ctx) {
			fmt.Printf("%-20s  %-30s  %-9s  %s\n",
				m.ID, truncate(m.Title, 30), "generated",
				m.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var modulesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cs, closeStore, err := openContentStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if cs.GetByID(ctx, args[0]) == nil {
			return fmt.Errorf("no stored module with id %q", args[0])
		}
		cs.Delete(ctx, args[0])
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var modulesExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export stored modules as JSON (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cs, closeStore, err := openContentStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cs.Export(ctx)
		if len(args) == 0 {
			fmt.Println(out)
			return nil
		}
		if err := os.WriteFile(args[0], []byte(out), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println("Exported to", args[0])
		return nil
	},
}

var modulesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace stored modules with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		ctx, cs, closeStore, err := openContentStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if !cs.Import(ctx, string(raw)) {
			return fmt.Errorf("%s does not contain a module list", args[0])
		}
		fmt.Printf("Imported %d module(s)\n", len(cs.List(ctx)))
		return nil
	},
}

var modulesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cs, closeStore, err := openContentStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		cs.Clear(ctx)
		fmt.Println("Cleared stored modules.")
		return nil
	},
}

func init() {
	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesDeleteCmd)
	modulesCmd.AddCommand(modulesExportCmd)
	modulesCmd.AddCommand(modulesImportCmd)
	modulesCmd.AddCommand(modulesClearCmd)
}

// openContentStore opens the SQLite-backed content store for a command.
// The returned func closes the underlying database.
func openContentStore(cmd *cobra.Command) (context.Context, *storage.ContentStore, func(), error) {
	mode, _ := cmd.Flags().GetString("log")
	log, err := logger.New(mode)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	kv, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	closeStore := func() {
		kv.Close()
		log.Sync()
	}
	return cmd.Context(), storage.NewContentStore(kv, log), closeStore, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
