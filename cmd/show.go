package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one product's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	spin := ui.NewSpinner()
	spin.Start("Loading product details...")
	p, err := newCatalog().Get(context.Background(), id)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}

	switch normalizeFormat(cfg.Format) {
	case "json":
		printJSON(p)
	default:
		printProductDetail(*p)
	}
	return nil
}
