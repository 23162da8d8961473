package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lukman83/shopfront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("skip"))
		io.WriteString(w, `{
			"products": [
				{"id": 1, "title": "Mug", "price": 5, "stock": 99, "sku": "X-1"},
				{"id": 2, "title": "Shirt", "price": 20}
			],
			"total": 2, "skip": 20, "limit": 10
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	page, err := c.List(context.Background(), ListOpts{Limit: 10, Skip: 20})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Mug", page.Products[0].Title)
	// Unknown remote fields (stock, sku) are dropped by the projection.
	raw, _ := json.Marshal(page.Products[0])
	assert.NotContains(t, string(raw), "stock")
}

func TestListSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "mug", r.URL.Query().Get("q"))
		io.WriteString(w, `{"products": [{"id": 1, "title": "Mug", "price": 5}], "total": 1}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	page, err := c.List(context.Background(), ListOpts{Query: "mug"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/7", r.URL.Path)
		io.WriteString(w, `{"id": 7, "title": "Lamp", "price": 12.5, "reviews": [{"reviewerName": "Ana", "rating": 4}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	p, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, 12.5, p.Price)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "Ana", p.Reviews[0].ReviewerName)
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add", r.URL.Path)
		var np models.NewProduct
		require.NoError(t, json.NewDecoder(r.Body).Decode(&np))
		assert.Equal(t, "Mug", np.Title)
		io.WriteString(w, `{"id": 101, "title": "Mug", "price": 5}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	created, err := c.Create(context.Background(), models.NewProduct{Title: "Mug", Price: 5})
	require.NoError(t, err)
	assert.Equal(t, 101, created.ID)
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/7", r.URL.Path)
		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		// The partial update carries exactly the four editable fields.
		assert.Len(t, patch, 4)
		assert.Equal(t, "Red Mug", patch["title"])
		io.WriteString(w, `{"id": 7, "title": "Red Mug", "price": 9.99}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	updated, err := c.Update(context.Background(), 7, models.ProductPatch{Title: "Red Mug", Price: 9.99})
	require.NoError(t, err)
	assert.Equal(t, "Red Mug", updated.Title)
}

func TestDelete(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/7", r.URL.Path)
		io.WriteString(w, `{"id": 7, "isDeleted": true}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	require.NoError(t, c.Delete(context.Background(), 7))
	assert.True(t, called)
}

func TestRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message": "Product with id '999' not found"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	_, err := c.Get(context.Background(), 999)
	require.Error(t, err)

	assert.True(t, IsRemote(err))
	assert.True(t, NotFound(err))
	assert.False(t, IsNetwork(err))
	assert.Contains(t, err.Error(), "Product with id '999' not found")
}

func TestRemoteErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "upstream exploded")
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, 1)
	_, err := c.Get(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := NewClient(http.DefaultClient, srv.URL, 1)
	_, err := c.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.False(t, IsRemote(err))
}

func TestListAll(t *testing.T) {
	catalogSize := 25
	all := make([]models.Product, catalogSize)
	for i := range all {
		all[i] = models.Product{ID: i + 1, Title: "P", Price: 1}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 10
		skip := 0
		if v := r.URL.Query().Get("skip"); v != "" {
			json.Unmarshal([]byte(v), &skip)
		}
		end := skip + limit
		if end > catalogSize {
			end = catalogSize
		}
		page := Page{Products: all[skip:end], Total: catalogSize, Skip: skip, Limit: limit}
		json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	var mu sync.Mutex
	var progress []string
	ctx := WithProgress(context.Background(), func(msg string) {
		mu.Lock()
		progress = append(progress, msg)
		mu.Unlock()
	})

	c := NewClient(srv.Client(), srv.URL, 2)
	products, err := c.ListAll(ctx, 10)
	require.NoError(t, err)

	require.Len(t, products, catalogSize)
	seen := make(map[int]bool)
	for _, p := range products {
		seen[p.ID] = true
	}
	assert.Len(t, seen, catalogSize)
	assert.NotEmpty(t, progress)
}

func TestProgressWithoutCallback(t *testing.T) {
	// Must be a silent no-op when no callback is set.
	ReportProgress(context.Background(), "ignored")
}
