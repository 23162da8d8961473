package listing

import "sync/atomic"

// RefreshSignal is the monotonically increasing token that tells the list
// to reload. Collaborators bump it after any add, edit or delete; the
// controller only compares values, never interprets them.
type RefreshSignal struct {
	n atomic.Uint64
}

// Bump advances the token and returns the new value.
func (r *RefreshSignal) Bump() uint64 {
	return r.n.Add(1)
}

// Current returns the token without advancing it.
func (r *RefreshSignal) Current() uint64 {
	return r.n.Load()
}
