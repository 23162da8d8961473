package cmd

import (
	"fmt"
	"log"

	"github.com/lukman83/shopfront/internal/cart"
	mcpserver "github.com/lukman83/shopfront/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	client := newCatalog()
	deps := mcpserver.Deps{
		Catalog: client,
		Cart:    cart.NewStore(client),
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Shopfront MCP server on stdio...")

	if err := mcpserver.Serve(deps); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return nil
}
