package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a catalog product",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	prompter := ui.NewConsolePrompter()
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !prompter.Confirm("Delete this product?") {
		return nil
	}

	if err := newCatalog().Delete(context.Background(), id); err != nil {
		prompter.Notify("Failed to delete product", ui.Error)
		return err
	}
	prompter.Notify(fmt.Sprintf("Product #%d deleted", id), ui.Info)
	return nil
}
