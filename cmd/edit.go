package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lukman83/shopfront/internal/editor"
	"github.com/lukman83/shopfront/internal/listing"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a product's title, price, description or category",
	Long:  "Loads the product, applies the given field flags to a draft, validates, and saves. Unset flags keep their current values.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().Float64("price", 0, "New price")
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("category", "", "New category")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	prompter := ui.NewConsolePrompter()
	var signal listing.RefreshSignal
	ed := editor.NewController(newCatalog(), &signal)
	ctx := context.Background()

	spin := ui.NewSpinner()
	spin.Start("Loading product details...")
	err = ed.Open(ctx, id)
	spin.Stop()
	if err != nil {
		_, msg := ed.State()
		return fmt.Errorf("%s: %w", msg, err)
	}

	ed.StartEditing()
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		ed.SetTitle(v)
	}
	if cmd.Flags().Changed("price") {
		v, _ := cmd.Flags().GetFloat64("price")
		ed.SetPrice(v)
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		ed.SetDescription(v)
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		ed.SetCategory(v)
	}

	if err := ed.Save(ctx); err != nil {
		if editor.IsValidation(err) {
			prompter.Notify(err.Error(), ui.Warn)
			return err
		}
		prompter.Notify("Failed to update product", ui.Error)
		return err
	}

	prompter.Notify("Product updated", ui.Info)
	if p, ok := ed.Product(); ok {
		switch normalizeFormat(cfg.Format) {
		case "json":
			printJSON(p)
		default:
			printProductDetail(p)
		}
	}
	return nil
}
