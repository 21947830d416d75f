package models

import "sync"

// CancellationToken lets the UI stop a running animation between
// frames. The worker polls IsCancelled; the UI calls Cancel.
type CancellationToken struct {
	cancelled bool
	mu        sync.RWMutex
}

func NewCancellationToken() *CancellationToken {
	return &CancellationToken{}
}

// Cancel marks the token as cancelled.
func (ct *CancellationToken) Cancel() {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.cancelled = true
}

// IsCancelled returns true if the token has been cancelled.
func (ct *CancellationToken) IsCancelled() bool {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.cancelled
}

// Reset clears the cancellation state so the token can be reused for
// the next run.
func (ct *CancellationToken) Reset() {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.cancelled = false
}
