// Package editor drives the single-product view/edit flow: load, snapshot
// on edit, validate, save, and cancel-with-restore.
package editor

import (
	"context"
	"strings"
	"sync"

	"github.com/lukman83/shopfront/internal/models"
)

// State is the editor's position in its lifecycle:
// Closed → Loading → Viewing ⇄ Editing → Saving → Viewing,
// with Loading → LoadFailed and Saving → Editing as error transitions.
type State int

const (
	Closed State = iota
	Loading
	LoadFailed
	Viewing
	Editing
	Saving
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case LoadFailed:
		return "load-failed"
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	default:
		return "closed"
	}
}

// Catalog is the slice of the remote client the editor needs.
type Catalog interface {
	Get(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error)
}

// Refresher receives the signal that a save landed and the list is stale.
type Refresher interface {
	Bump() uint64
}

// Controller owns one product's view/edit session. The draft is never
// partially persisted: validation must pass fully before any network
// write is attempted.
type Controller struct {
	mu        sync.Mutex
	client    Catalog
	refresher Refresher

	state    State
	errMsg   string
	selected int // id of the current selection; 0 while Closed
	product  *models.Product
	snapshot *models.Product // rollback copy captured by StartEditing
}

// NewController creates a closed editor.
func NewController(client Catalog, refresher Refresher) *Controller {
	return &Controller{client: client, refresher: refresher}
}

// State returns the current state and its error message, if any.
func (c *Controller) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.errMsg
}

// Product returns a copy of the current product (the draft, while editing).
// The second result is false while no product is held.
func (c *Controller) Product() (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.product == nil {
		return models.Product{}, false
	}
	return *c.product, true
}

// Open selects a product and fetches it. Each fetch is tagged with the id
// it was issued for; if the selection moved on before the response lands,
// the stale result is discarded silently and the newer fetch wins.
func (c *Controller) Open(ctx context.Context, id int) error {
	c.mu.Lock()
	c.selected = id
	c.state = Loading
	c.errMsg = ""
	c.product = nil
	c.snapshot = nil
	c.mu.Unlock()

	p, err := c.client.Get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != id {
		// Superseded while in flight; not an error path.
		return nil
	}
	if err != nil {
		c.state = LoadFailed
		c.errMsg = "Failed to load product details"
		return err
	}
	c.product = p
	c.state = Viewing
	return nil
}

// Close discards everything and returns to Closed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Closed
	c.errMsg = ""
	c.selected = 0
	c.product = nil
	c.snapshot = nil
}

// StartEditing moves Viewing → Editing and captures the rollback snapshot.
// No-op in any other state.
func (c *Controller) StartEditing() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Viewing || c.product == nil {
		return
	}
	snap := *c.product
	c.snapshot = &snap
	c.state = Editing
}

// SetTitle mutates the draft. Only effective while Editing.
func (c *Controller) SetTitle(title string) { c.setField(func(p *models.Product) { p.Title = title }) }

// SetPrice mutates the draft. Only effective while Editing.
func (c *Controller) SetPrice(price float64) { c.setField(func(p *models.Product) { p.Price = price }) }

// SetDescription mutates the draft. Only effective while Editing.
func (c *Controller) SetDescription(d string) {
	c.setField(func(p *models.Product) { p.Description = d })
}

// SetCategory mutates the draft. Only effective while Editing.
func (c *Controller) SetCategory(cat string) {
	c.setField(func(p *models.Product) { p.Category = cat })
}

func (c *Controller) setField(mutate func(*models.Product)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Editing || c.product == nil {
		return
	}
	mutate(c.product)
}

// Save validates the draft, then pushes a partial update. Validation
// failure never reaches the network and leaves the editor in Editing with
// the message set. Remote failure also returns to Editing with the draft
// intact. Success lands in Viewing, drops the snapshot, and bumps the
// refresh signal.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Editing || c.product == nil {
		c.mu.Unlock()
		return &ValidationError{Reason: "nothing is being edited"}
	}
	if err := validate(c.product); err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return err
	}
	id := c.selected
	patch := models.ProductPatch{
		Title:       c.product.Title,
		Price:       c.product.Price,
		Description: c.product.Description,
		Category:    c.product.Category,
	}
	c.state = Saving
	c.errMsg = ""
	c.mu.Unlock()

	updated, err := c.client.Update(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Editing
		c.errMsg = "Failed to update product"
		return err
	}
	c.product = updated
	c.snapshot = nil
	c.state = Viewing
	if c.refresher != nil {
		c.refresher.Bump()
	}
	return nil
}

// CancelEdit restores the snapshot and returns to Viewing, discarding all
// draft changes. No-op outside Editing.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Editing {
		return
	}
	if c.snapshot != nil {
		c.product = c.snapshot
	}
	c.snapshot = nil
	c.errMsg = ""
	c.state = Viewing
}

func validate(p *models.Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "price must be greater than 0"}
	}
	return nil
}
