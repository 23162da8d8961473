package cmd

import (
	"context"
	"fmt"

	"github.com/lukman83/shopfront/internal/listing"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("search", "", "Client-side title filter (case-insensitive substring)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")

	lc := listing.NewController(newCatalog(), ui.NewConsolePrompter())

	spin := ui.NewSpinner()
	spin.Start("Loading products...")
	err := lc.Load(context.Background())
	spin.Stop()
	if err != nil {
		_, msg := lc.State()
		return fmt.Errorf("%s: %w", msg, err)
	}

	products := lc.Filter(search)

	switch normalizeFormat(cfg.Format) {
	case "json":
		printJSON(products)
	default:
		printProductsTable(products)
	}
	return nil
}
