package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lukman83/shopfront/internal/models"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new catalog product",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().String("title", "", "Product title")
	addCmd.Flags().String("category", "", "Product category")
	addCmd.Flags().Float64("price", 0, "Product price")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	category, _ := cmd.Flags().GetString("category")
	price, _ := cmd.Flags().GetFloat64("price")

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}

	prompter := ui.NewConsolePrompter()
	created, err := newCatalog().Create(context.Background(), models.NewProduct{
		Title:    title,
		Category: category,
		Price:    price,
	})
	if err != nil {
		prompter.Notify("Failed to add product", ui.Error)
		return err
	}

	prompter.Notify("Product added successfully!", ui.Info)
	switch normalizeFormat(cfg.Format) {
	case "json":
		printJSON(created)
	default:
		printProductDetail(*created)
	}
	return nil
}
