package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full catalog as JSON",
	Long:  "Pages through the whole remote catalog with bounded concurrency and writes every product as JSON.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().Int("page-size", 30, "Products per request")
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	outPath, _ := cmd.Flags().GetString("out")

	spin := ui.NewSpinner()
	spin.Start("Exporting catalog...")
	ctx := catalog.WithProgress(context.Background(), spin.Update)
	products, err := newCatalog().ListAll(ctx, pageSize)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d products\n", len(products))
	return nil
}
