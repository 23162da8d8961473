// Package listing drives the product list: load, filter, delete, and
// reconciliation with the remote catalog after mutations.
package listing

import (
	"context"
	"strings"

	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/lukman83/shopfront/internal/models"
	"github.com/lukman83/shopfront/internal/ui"
)

// State is the display state of the product list.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	LoadFailed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load-failed"
	default:
		return "idle"
	}
}

// Catalog is the slice of the remote client the list needs.
type Catalog interface {
	List(ctx context.Context, opts catalog.ListOpts) (*catalog.Page, error)
	Delete(ctx context.Context, id int) error
}

// Prompter confirms destructive actions and surfaces notifications.
type Prompter interface {
	Confirm(msg string) bool
	Notify(msg string, level ui.Level)
}

// Controller owns the local copy of the catalog. It is a UI-style
// controller: methods are meant to be called from one goroutine.
type Controller struct {
	client   Catalog
	prompter Prompter

	state    State
	errMsg   string
	products []models.Product

	lastKey    uint64
	loadedOnce bool
}

// NewController creates an idle list controller.
func NewController(client Catalog, prompter Prompter) *Controller {
	return &Controller{client: client, prompter: prompter}
}

// State returns the current display state and, for LoadFailed, its message.
func (c *Controller) State() (State, string) {
	return c.state, c.errMsg
}

// Products returns the loaded list. Only meaningful in the Loaded state.
func (c *Controller) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Load replaces the whole local list with a fresh catalog fetch. The local
// copy is a cache invalidated wholesale; there is no incremental sync.
func (c *Controller) Load(ctx context.Context) error {
	c.state = Loading
	c.errMsg = ""

	page, err := c.client.List(ctx, catalog.ListOpts{Limit: 0})
	if err != nil {
		c.state = LoadFailed
		c.errMsg = "Failed to load products"
		return err
	}

	c.products = page.Products
	c.state = Loaded
	return nil
}

// Sync reloads when the external refresh key changed since the last call.
// The first call always loads. Only the key's inequality matters, never
// its value.
func (c *Controller) Sync(ctx context.Context, key uint64) error {
	if c.loadedOnce && key == c.lastKey {
		return nil
	}
	c.lastKey = key
	c.loadedOnce = true
	return c.Load(ctx)
}

// Filter returns the products whose title contains term, case-insensitively.
// Pure and local: it never touches the network. An empty term matches all.
func (c *Controller) Filter(term string) []models.Product {
	if term == "" {
		return c.Products()
	}
	needle := strings.ToLower(term)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Delete asks for confirmation, deletes remotely, then removes the item
// from the local list. Remote first, local only after success; the next
// Load reconciles any drift. On failure the list is untouched and the
// user is notified.
func (c *Controller) Delete(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Delete this product?") {
		return nil
	}

	if err := c.client.Delete(ctx, id); err != nil {
		c.prompter.Notify("Failed to delete product", ui.Error)
		return err
	}

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	return nil
}
