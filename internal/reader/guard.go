// Copyright (c) 2026 Minar. All rights reserved.

package reader

import "sync"

// # Fetch Generation Guard
//
// Rapid navigation issues overlapping reader views, each of which schedules
// asynchronous side effects (position write, progress write). Without
// ordering, a slow effect from an earlier view can land after a faster one
// from a later view and roll the stored position backwards. Every view
// therefore draws a monotonically increasing token per (client, book);
// an effect commits only while its token is still the latest.

// Guard issues and checks per-scope generation tokens. Safe for concurrent
// use. State is process-local: after a restart all tokens reset, which only
// means the first post-restart effect always commits.
type Guard struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewGuard constructs an empty [Guard].
func NewGuard() *Guard {
	return &Guard{latest: make(map[string]uint64)}
}

// Issue draws the next token for a scope and makes it the latest.
func (guard *Guard) Issue(scope string) uint64 {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	guard.latest[scope]++
	return guard.latest[scope]
}

// IsCurrent reports whether a token is still the newest for its scope.
// Stale tokens stay stale forever: generations never wrap in practice.
func (guard *Guard) IsCurrent(scope string, token uint64) bool {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	return guard.latest[scope] == token
}

// Forget retires a scope's counter, releasing its memory, provided token is
// still the scope's latest. A newer generation means the client has kept
// navigating and the scope must survive. Called when a client reaches the
// end of a book; missing scopes are a no-op.
func (guard *Guard) Forget(scope string, token uint64) {
	guard.mu.Lock()
	defer guard.mu.Unlock()

	if guard.latest[scope] == token {
		delete(guard.latest, scope)
	}
}
