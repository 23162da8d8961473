// Package mcp exposes the catalog and the session cart as MCP tools.
// The cart's session is the server process: it lives until shutdown.
package mcp

import (
	"github.com/lukman83/shopfront/internal/cart"
	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/mark3labs/mcp-go/server"
)

// Deps are the collaborators the tool handlers close over.
type Deps struct {
	Catalog *catalog.Client
	Cart    *cart.Store
}

func newServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"shopfront",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, deps)
	return s
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(deps Deps) error {
	return server.ServeStdio(newServer(deps))
}
