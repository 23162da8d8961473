package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lukman83/shopfront/internal/httputil"
	"github.com/lukman83/shopfront/internal/models"
	"golang.org/x/sync/errgroup"
)

// Client talks to the remote catalog service. All responses decode into
// the local models, so unknown remote fields are dropped by construction.
type Client struct {
	http          *http.Client
	baseURL       string
	maxConcurrent int
}

// NewClient creates a catalog client. maxConcurrent bounds page fan-out
// in ListAll; values below 1 are treated as 1.
func NewClient(httpClient *http.Client, baseURL string, maxConcurrent int) *Client {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Client{
		http:          httpClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxConcurrent: maxConcurrent,
	}
}

// ListOpts controls catalog pagination and server-side search.
type ListOpts struct {
	Limit int
	Skip  int
	Query string // when set, hits the search endpoint instead
}

// Page is one page of catalog results.
type Page struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// List fetches one catalog page.
func (c *Client) List(ctx context.Context, opts ListOpts) (*Page, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	endpoint := c.baseURL
	if opts.Query != "" {
		endpoint += "/search"
		q.Set("q", opts.Query)
	}
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	body, err := c.do(ctx, "list", http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode catalog page: %w", err)
	}
	return &page, nil
}

// Get fetches a single product by id.
func (c *Client) Get(ctx context.Context, id int) (*models.Product, error) {
	body, err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("%s/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return &p, nil
}

// Create adds a new product. The service echoes the created record back.
func (c *Client) Create(ctx context.Context, np models.NewProduct) (*models.Product, error) {
	body, err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/add", np)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode created product: %w", err)
	}
	return &p, nil
}

// Update issues a partial update for an existing product.
func (c *Client) Update(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	body, err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), patch)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode updated product: %w", err)
	}
	return &p, nil
}

// Delete removes a product. The acknowledgement body is discarded.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("%s/%d", c.baseURL, id), nil)
	return err
}

// ListAll pages through the whole catalog concurrently. The first page
// establishes the total; remaining pages are fetched with bounded fan-out.
func (c *Client) ListAll(ctx context.Context, pageSize int) ([]models.Product, error) {
	if pageSize <= 0 {
		pageSize = 30
	}

	first, err := c.List(ctx, ListOpts{Limit: pageSize})
	if err != nil {
		return nil, err
	}
	ReportProgress(ctx, fmt.Sprintf("Fetched %d of %d products...", len(first.Products), first.Total))
	if first.Total <= len(first.Products) {
		return first.Products, nil
	}

	pages := (first.Total + pageSize - 1) / pageSize
	results := make([][]models.Product, pages)
	results[0] = first.Products

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	for i := 1; i < pages; i++ {
		i := i
		g.Go(func() error {
			page, err := c.List(ctx, ListOpts{Limit: pageSize, Skip: i * pageSize})
			if err != nil {
				return err
			}
			results[i] = page.Products
			ReportProgress(ctx, fmt.Sprintf("Fetched page %d of %d...", i+1, pages))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []models.Product
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// do executes one request and classifies failures into NetworkError or
// RemoteError. payload, when non-nil, is JSON-encoded as the request body.
func (c *Client) do(ctx context.Context, op, method, endpoint string, payload any) ([]byte, error) {
	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{Op: op, Status: resp.StatusCode, Message: remoteMessage(body)}
	}
	return body, nil
}

// remoteMessage extracts the server-supplied message from an error body.
func remoteMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
