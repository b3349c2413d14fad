// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"context"
	"errors"
	"fmt"
)

// errStoreUnavailable stands in for any backend failure in tests.
var errStoreUnavailable = errors.New("reader: state store unavailable")

// # State Store

/*
StateStore is the key-value persistence capability behind reading positions
and display preferences.

Callers treat it as best-effort: a Get error is handled like an absent key
and a Set error is logged and dropped. The reading experience must never
fail because state could not be stored — the degradation is that the client
resumes at defaults on its next visit.
*/
type StateStore interface {
	// Get returns the value for a key, or ok=false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes a key. Implementations apply their own retention policy.
	Set(ctx context.Context, key, value string) error

	// Clear removes a key. Missing keys are not an error.
	Clear(ctx context.Context, key string) error
}

// # Key Taxonomy
//
// All keys are scoped by the opaque client identity so one browser's state
// never collides with another's.

// keyFontSize is the global font-size preference key for a client.
func keyFontSize(client string) string {
	return fmt.Sprintf("%s:font-size", client)
}

// keyFontFamily is the global font-family preference key for a client.
func keyFontFamily(client string) string {
	return fmt.Sprintf("%s:font-family", client)
}

// keyTheme is the global theme preference key for a client.
func keyTheme(client string) string {
	return fmt.Sprintf("%s:theme", client)
}

// keyPosition is the per-(book, chapter) last-read page key. Each chapter
// keeps its own position so returning to any chapter resumes independently.
func keyPosition(client, bookID string, chapterNumber int) string {
	return fmt.Sprintf("%s:book:%s:ch:%d:page", client, bookID, chapterNumber)
}

// keyProgress is the coarse per-book bookmark: the last (chapter, page)
// pair viewed. Written on every chapter view, only read by the "continue
// reading" surface, never by position resolution.
func keyProgress(client, bookID string) string {
	return fmt.Sprintf("%s:book:%s:progress", client, bookID)
}
