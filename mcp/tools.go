package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/lukman83/shopfront/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer, deps Deps) {
	// list_products
	listTool := mcp.NewTool("list_products",
		mcp.WithDescription("List catalog products, optionally filtered by a search term"),
		mcp.WithString("search",
			mcp.Description("Server-side search term"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Products per page (default: service default)"),
		),
		mcp.WithNumber("skip",
			mcp.Description("Offset into the catalog"),
		),
	)
	s.AddTool(listTool, handleListProducts(deps))

	// get_product
	getTool := mcp.NewTool("get_product",
		mcp.WithDescription("Get full product details by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(getTool, handleGetProduct(deps))

	// add_product
	addTool := mcp.NewTool("add_product",
		mcp.WithDescription("Create a new catalog product"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Product title"),
		),
		mcp.WithString("category",
			mcp.Description("Product category"),
		),
		mcp.WithNumber("price",
			mcp.Required(),
			mcp.Description("Product price, must be greater than 0"),
		),
	)
	s.AddTool(addTool, handleAddProduct(deps))

	// update_product
	updateTool := mcp.NewTool("update_product",
		mcp.WithDescription("Update a product's title, price, description or category. Omitted fields keep their current values"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithNumber("price",
			mcp.Description("New price, must be greater than 0"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("category",
			mcp.Description("New category"),
		),
	)
	s.AddTool(updateTool, handleUpdateProduct(deps))

	// delete_product
	deleteTool := mcp.NewTool("delete_product",
		mcp.WithDescription("Delete a product from the catalog"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(deleteTool, handleDeleteProduct(deps))

	// cart tools — the cart lives for this server session
	cartAdd := mcp.NewTool("cart_add",
		mcp.WithDescription("Add a product to the session cart, or bump its quantity if already present"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(cartAdd, handleCartAdd(deps))

	cartIncrease := mcp.NewTool("cart_increase",
		mcp.WithDescription("Increase a cart line's quantity by one"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(cartIncrease, handleCartQuantity(deps, true))

	cartDecrease := mcp.NewTool("cart_decrease",
		mcp.WithDescription("Decrease a cart line's quantity by one, never below 1"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(cartDecrease, handleCartQuantity(deps, false))

	cartRemove := mcp.NewTool("cart_remove",
		mcp.WithDescription("Remove a line from the session cart"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Product id"),
		),
	)
	s.AddTool(cartRemove, handleCartRemove(deps))

	cartView := mcp.NewTool("cart_view",
		mcp.WithDescription("Show the session cart's lines and total"),
	)
	s.AddTool(cartView, handleCartView(deps))

	cartClear := mcp.NewTool("cart_clear",
		mcp.WithDescription("Empty the session cart"),
	)
	s.AddTool(cartClear, handleCartClear(deps))
}

func handleListProducts(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := catalog.ListOpts{
			Query: request.GetString("search", ""),
			Limit: request.GetInt("limit", 0),
			Skip:  request.GetInt("skip", 0),
		}
		page, err := deps.Catalog.List(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list error: %v", err)), nil
		}
		return jsonResult(page)
	}
}

func handleGetProduct(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}
		p, err := deps.Catalog.Get(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get error: %v", err)), nil
		}
		return jsonResult(p)
	}
}

func handleAddProduct(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := request.GetString("title", "")
		price := request.GetFloat("price", 0)
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}
		if price <= 0 {
			return mcp.NewToolResultError("price must be greater than 0"), nil
		}
		created, err := deps.Catalog.Create(ctx, models.NewProduct{
			Title:    title,
			Category: request.GetString("category", ""),
			Price:    price,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("create error: %v", err)), nil
		}
		return jsonResult(created)
	}
}

func handleUpdateProduct(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}

		// Start from the current record so omitted fields keep their values.
		current, err := deps.Catalog.Get(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get error: %v", err)), nil
		}
		patch := models.ProductPatch{
			Title:       request.GetString("title", current.Title),
			Price:       request.GetFloat("price", current.Price),
			Description: request.GetString("description", current.Description),
			Category:    request.GetString("category", current.Category),
		}
		if patch.Title == "" {
			return mcp.NewToolResultError("title must not be empty"), nil
		}
		if patch.Price <= 0 {
			return mcp.NewToolResultError("price must be greater than 0"), nil
		}

		updated, err := deps.Catalog.Update(ctx, id, patch)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("update error: %v", err)), nil
		}
		return jsonResult(updated)
	}
}

func handleDeleteProduct(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}
		if err := deps.Catalog.Delete(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("delete error: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("product %d deleted", id)), nil
	}
}

func handleCartAdd(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}
		if err := deps.Cart.Add(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("cart error: %v", err)), nil
		}
		return cartResult(deps)
	}
}

func handleCartQuantity(deps Deps, increase bool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}
		if increase {
			deps.Cart.Increase(id)
		} else {
			deps.Cart.Decrease(id)
		}
		return cartResult(deps)
	}
}

func handleCartRemove(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetInt("id", 0)
		if id <= 0 {
			return mcp.NewToolResultError("id is required"), nil
		}
		deps.Cart.Remove(id)
		return cartResult(deps)
	}
}

func handleCartView(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return cartResult(deps)
	}
}

func handleCartClear(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps.Cart.Clear()
		return cartResult(deps)
	}
}

// cartResult renders the cart's lines and total. The total is rounded to
// two decimals here, at the presentation boundary.
func cartResult(deps Deps) (*mcp.CallToolResult, error) {
	view := struct {
		Lines []models.CartLine `json:"lines"`
		Total string            `json:"total"`
	}{
		Lines: deps.Cart.Lines(),
		Total: fmt.Sprintf("%.2f", deps.Cart.Total()),
	}
	if view.Lines == nil {
		view.Lines = []models.CartLine{}
	}
	return jsonResult(view)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
