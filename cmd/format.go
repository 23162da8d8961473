package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lukman83/shopfront/internal/models"
)

// printProductsTable prints products in a human-friendly card layout.
func printProductsTable(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(os.Stdout, "No products.")
		return
	}
	for i, p := range products {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, " %d. [#%d] %s\n", i+1, p.ID, p.Title)

		priceLine := "    Price: " + formatPrice(p.Price)
		if p.DiscountPercentage > 0 {
			priceLine += fmt.Sprintf("  (-%.1f%%)", p.DiscountPercentage)
		}
		if p.Brand != "" {
			priceLine += "  |  Brand: " + p.Brand
		}
		fmt.Fprintln(os.Stdout, priceLine)

		if p.Category != "" {
			fmt.Fprintf(os.Stdout, "    Category: %s\n", p.Category)
		}
	}
}

// printProductDetail prints one product with description and reviews.
func printProductDetail(p models.Product) {
	fmt.Fprintf(os.Stdout, "[#%d] %s\n", p.ID, p.Title)
	fmt.Fprintf(os.Stdout, "Price: %s", formatPrice(p.Price))
	if p.DiscountPercentage > 0 {
		fmt.Fprintf(os.Stdout, "  (-%.1f%%)", p.DiscountPercentage)
	}
	fmt.Fprintln(os.Stdout)
	if p.Category != "" {
		fmt.Fprintf(os.Stdout, "Category: %s\n", p.Category)
	}
	if p.Brand != "" {
		fmt.Fprintf(os.Stdout, "Brand: %s\n", p.Brand)
	}
	if p.Description != "" {
		fmt.Fprintf(os.Stdout, "\n%s\n", p.Description)
	}
	if len(p.Reviews) > 0 {
		fmt.Fprintf(os.Stdout, "\nReviews:\n")
		for _, r := range p.Reviews {
			name := r.ReviewerName
			if name == "" {
				name = "Anonymous"
			}
			fmt.Fprintf(os.Stdout, "  %s (%.0f/5): %s\n", name, r.Rating, truncate(r.Comment, 70))
		}
	}
}

// printCart prints the cart lines and the total, rounded to two decimals
// here at presentation time only.
func printCart(lines []models.CartLine, total float64) {
	if len(lines) == 0 {
		fmt.Fprintln(os.Stdout, "Your cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(os.Stdout, " [#%d] %-40s  %s x %d = %s\n",
			l.ProductID, truncate(l.Title, 40), formatPrice(l.Price), l.Quantity, formatPrice(l.Subtotal()))
	}
	fmt.Fprintf(os.Stdout, " %-47s Total: %s\n", "", formatPrice(total))
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// formatPrice renders a price as "$9.99".
func formatPrice(f float64) string {
	return fmt.Sprintf("$%.2f", f)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// normalizeFormat folds the --format value to a known value.
func normalizeFormat(v string) string {
	switch strings.ToLower(v) {
	case "json":
		return "json"
	default:
		return "table"
	}
}
