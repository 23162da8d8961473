// Package cart holds the session-scoped shopping cart.
package cart

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/lukman83/shopfront/internal/models"
	"golang.org/x/sync/singleflight"
)

// ProductFetcher looks up a product's current data when a line is first
// added. The catalog client satisfies this.
type ProductFetcher interface {
	Get(ctx context.Context, id int) (*models.Product, error)
}

// Store is the in-memory cart. At most one line exists per product; the
// line snapshots title, price and thumbnail at add time. The zero line
// count is the empty cart; the store lives for the process session and
// is rebuilt from scratch on restart.
type Store struct {
	mu      sync.Mutex
	lines   []models.CartLine // insertion order preserved for rendering
	index   map[int]int       // productID → position in lines
	fetcher ProductFetcher
	flight  singleflight.Group // dedupes concurrent first-add fetches per product
}

// NewStore creates an empty cart backed by the given product fetcher.
func NewStore(fetcher ProductFetcher) *Store {
	return &Store{
		index:   make(map[int]int),
		fetcher: fetcher,
	}
}

// Add puts a product in the cart. An existing line is incremented without
// a fetch; a new line fetches the product first and starts at quantity 1.
// On fetch failure the cart is left unchanged. Concurrent adds for the
// same product share a single in-flight fetch.
func (s *Store) Add(ctx context.Context, productID int) error {
	s.mu.Lock()
	if pos, ok := s.index[productID]; ok {
		s.lines[pos].Quantity++
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	v, err, _ := s.flight.Do(strconv.Itoa(productID), func() (any, error) {
		return s.fetcher.Get(ctx, productID)
	})
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	p := v.(*models.Product)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller sharing the fetch may have inserted first.
	if pos, ok := s.index[productID]; ok {
		s.lines[pos].Quantity++
		return nil
	}
	s.index[productID] = len(s.lines)
	s.lines = append(s.lines, models.CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Thumbnail: p.Thumbnail,
		Quantity:  1,
	})
	return nil
}

// Increase bumps a line's quantity by one. No-op if the product is absent.
func (s *Store) Increase(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos, ok := s.index[productID]; ok {
		s.lines[pos].Quantity++
	}
}

// Decrease lowers a line's quantity by one, floored at 1. Removing a line
// is Remove's job, never Decrease's. No-op if the product is absent.
func (s *Store) Decrease(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos, ok := s.index[productID]; ok && s.lines[pos].Quantity > 1 {
		s.lines[pos].Quantity--
	}
}

// Remove deletes a line. Idempotent.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[productID]
	if !ok {
		return
	}
	s.lines = append(s.lines[:pos], s.lines[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.lines); i++ {
		s.index[s.lines[i].ProductID] = i
	}
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total returns the exact sum of price*quantity over all lines. Rounding
// to two decimals happens at presentation time, never here.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Len returns the number of lines in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Clear empties the cart. Used on session end and in tests.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.index = make(map[int]int)
}
