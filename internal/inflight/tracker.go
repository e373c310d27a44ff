// Package inflight cancels superseded requests.
package inflight

import (
	"context"
	"sync"
)

// Tracker holds the cancel function of the latest request of one kind. Starting
// a request with a higher sequence number cancels the previous one; requests
// with a lower number than the latest are cancelled immediately.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start derives a cancellable context for request seq from parent.
func (t *Tracker) Start(parent context.Context, seq uint64) context.Context {
	ctx, cancel := context.WithCancel(parent)

	t.mu.Lock()
	defer t.mu.Unlock()

	if seq < t.seq {
		cancel()
		return ctx
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.seq = seq
	t.cancel = cancel
	return ctx
}

// Done releases request seq if it is still the latest.
func (t *Tracker) Done(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq == t.seq && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// CancelAll cancels the in-flight request, if any.
func (t *Tracker) CancelAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
