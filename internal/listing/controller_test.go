package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/lukman83/shopfront/internal/models"
	"github.com/lukman83/shopfront/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	products  []models.Product
	listErr   error
	deleteErr error

	listCalls   int
	deleteCalls []int
}

func (f *fakeCatalog) List(ctx context.Context, opts catalog.ListOpts) (*catalog.Page, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return &catalog.Page{Products: out, Total: len(out)}, nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

type fakePrompter struct {
	answer   bool
	confirms []string
	notices  []string
}

func (f *fakePrompter) Confirm(msg string) bool {
	f.confirms = append(f.confirms, msg)
	return f.answer
}

func (f *fakePrompter) Notify(msg string, level ui.Level) {
	f.notices = append(f.notices, msg)
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Mug", Price: 5},
		{ID: 2, Title: "Shirt", Price: 20},
		{ID: 3, Title: "Dress Shirt", Price: 45},
	}
}

func TestLoad(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	c := NewController(client, &fakePrompter{})

	state, _ := c.State()
	assert.Equal(t, Idle, state)

	require.NoError(t, c.Load(context.Background()))

	state, msg := c.State()
	assert.Equal(t, Loaded, state)
	assert.Empty(t, msg)
	assert.Len(t, c.Products(), 3)
}

func TestLoadFailure(t *testing.T) {
	client := &fakeCatalog{listErr: errors.New("boom")}
	c := NewController(client, &fakePrompter{})

	err := c.Load(context.Background())
	require.Error(t, err)

	state, msg := c.State()
	assert.Equal(t, LoadFailed, state)
	assert.Equal(t, "Failed to load products", msg)
}

func TestLoadReplacesWholesale(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	c := NewController(client, &fakePrompter{})
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	client.products = []models.Product{{ID: 9, Title: "Lamp", Price: 12}}
	require.NoError(t, c.Load(ctx))

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 9, products[0].ID)
}

func TestSyncReloadsOnlyOnKeyChange(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	c := NewController(client, &fakePrompter{})
	ctx := context.Background()

	// First call always loads, whatever the key is.
	require.NoError(t, c.Sync(ctx, 0))
	assert.Equal(t, 1, client.listCalls)

	// Same key: no reload.
	require.NoError(t, c.Sync(ctx, 0))
	require.NoError(t, c.Sync(ctx, 0))
	assert.Equal(t, 1, client.listCalls)

	// Changed key: reload.
	require.NoError(t, c.Sync(ctx, 1))
	assert.Equal(t, 2, client.listCalls)
	require.NoError(t, c.Sync(ctx, 2))
	assert.Equal(t, 3, client.listCalls)
}

func TestFilter(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	c := NewController(client, &fakePrompter{})
	require.NoError(t, c.Load(context.Background()))
	calls := client.listCalls

	matches := c.Filter("shirt")
	require.Len(t, matches, 2)
	assert.Equal(t, "Shirt", matches[0].Title)
	assert.Equal(t, "Dress Shirt", matches[1].Title)

	assert.Len(t, c.Filter("SHIRT"), 2)
	assert.Len(t, c.Filter("mUg"), 1)
	assert.Empty(t, c.Filter("sofa"))
	assert.Len(t, c.Filter(""), 3)

	// Filtering is local: no extra network calls.
	assert.Equal(t, calls, client.listCalls)
}

func TestFilterIgnoresLoadOrder(t *testing.T) {
	forward := &fakeCatalog{products: sampleProducts()}
	reversed := &fakeCatalog{products: []models.Product{
		{ID: 3, Title: "Dress Shirt", Price: 45},
		{ID: 2, Title: "Shirt", Price: 20},
		{ID: 1, Title: "Mug", Price: 5},
	}}

	ids := func(ps []models.Product) map[int]bool {
		out := make(map[int]bool)
		for _, p := range ps {
			out[p.ID] = true
		}
		return out
	}

	a := NewController(forward, &fakePrompter{})
	b := NewController(reversed, &fakePrompter{})
	require.NoError(t, a.Load(context.Background()))
	require.NoError(t, b.Load(context.Background()))

	assert.Equal(t, ids(a.Filter("shirt")), ids(b.Filter("shirt")))
}

func TestDeleteDeclined(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	prompter := &fakePrompter{answer: false}
	c := NewController(client, prompter)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Delete(context.Background(), 1))

	// No remote call, nothing removed.
	assert.Empty(t, client.deleteCalls)
	assert.Len(t, c.Products(), 3)
	assert.Equal(t, []string{"Delete this product?"}, prompter.confirms)
}

func TestDeleteSuccess(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts()}
	prompter := &fakePrompter{answer: true}
	c := NewController(client, prompter)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Delete(context.Background(), 2))

	assert.Equal(t, []int{2}, client.deleteCalls)
	products := c.Products()
	require.Len(t, products, 2)
	for _, p := range products {
		assert.NotEqual(t, 2, p.ID)
	}
}

func TestDeleteFailureLeavesListIntact(t *testing.T) {
	client := &fakeCatalog{products: sampleProducts(), deleteErr: errors.New("boom")}
	prompter := &fakePrompter{answer: true}
	c := NewController(client, prompter)
	require.NoError(t, c.Load(context.Background()))

	err := c.Delete(context.Background(), 2)
	require.Error(t, err)

	assert.Len(t, c.Products(), 3)
	assert.Equal(t, []string{"Failed to delete product"}, prompter.notices)
}

func TestRefreshSignal(t *testing.T) {
	var s RefreshSignal
	assert.Equal(t, uint64(0), s.Current())
	assert.Equal(t, uint64(1), s.Bump())
	assert.Equal(t, uint64(2), s.Bump())
	assert.Equal(t, uint64(2), s.Current())
}
