package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lukman83/shopfront/internal/cart"
	"github.com/lukman83/shopfront/internal/listing"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse the catalog with a session cart",
	Long:  "Starts a small shell over the catalog. The cart lives for this session only and is gone when you quit.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

const browseHelp = `Commands:
  list                 show the catalog
  search <term>        filter by title (case-insensitive)
  add <id>             put a product in the cart (or bump its quantity)
  inc <id> / dec <id>  change a line's quantity (never below 1)
  rm <id>              remove a line from the cart
  cart                 show cart lines and total
  clear                empty the cart
  delete <id>          delete a product from the catalog (asks first)
  reload               refetch the catalog
  quit                 leave (the cart is not saved)`

func runBrowse(cmd *cobra.Command, args []string) error {
	client := newCatalog()
	prompter := ui.NewConsolePrompter()
	store := cart.NewStore(client)
	lc := listing.NewController(client, prompter)
	var signal listing.RefreshSignal

	ctx := context.Background()
	if err := lc.Sync(ctx, signal.Current()); err != nil {
		_, msg := lc.State()
		prompter.Notify(msg, ui.Error)
	}

	fmt.Fprintln(os.Stdout, "shopfront browse — type 'help' for commands")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			return nil
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		verb := strings.ToLower(fields[0])
		rest := fields[1:]

		// Pick up refresh signals from edits/deletes in this session.
		if err := lc.Sync(ctx, signal.Current()); err != nil {
			_, msg := lc.State()
			prompter.Notify(msg, ui.Error)
		}

		switch verb {
		case "help":
			fmt.Fprintln(os.Stdout, browseHelp)

		case "list":
			printProductsTable(lc.Products())

		case "search":
			printProductsTable(lc.Filter(strings.Join(rest, " ")))

		case "add":
			id, ok := parseID(rest, prompter)
			if !ok {
				continue
			}
			if err := store.Add(ctx, id); err != nil {
				prompter.Notify("Failed to add to cart", ui.Error)
				continue
			}
			prompter.Notify(fmt.Sprintf("Added #%d to cart", id), ui.Info)

		case "inc":
			if id, ok := parseID(rest, prompter); ok {
				store.Increase(id)
			}

		case "dec":
			if id, ok := parseID(rest, prompter); ok {
				store.Decrease(id)
			}

		case "rm":
			if id, ok := parseID(rest, prompter); ok {
				store.Remove(id)
			}

		case "cart":
			printCart(store.Lines(), store.Total())

		case "clear":
			store.Clear()

		case "delete":
			id, ok := parseID(rest, prompter)
			if !ok {
				continue
			}
			if err := lc.Delete(ctx, id); err == nil {
				signal.Bump()
			}

		case "reload":
			signal.Bump()
			if err := lc.Sync(ctx, signal.Current()); err != nil {
				_, msg := lc.State()
				prompter.Notify(msg, ui.Error)
			}

		case "quit", "exit":
			return nil

		default:
			prompter.Notify(fmt.Sprintf("Unknown command %q - type 'help'", verb), ui.Warn)
		}
	}
}

func parseID(args []string, prompter *ui.ConsolePrompter) (int, bool) {
	if len(args) != 1 {
		prompter.Notify("Expected a product id", ui.Warn)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		prompter.Notify(fmt.Sprintf("Invalid product id %q", args[0]), ui.Warn)
		return 0, false
	}
	return id, true
}
