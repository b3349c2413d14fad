// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
)

// # Reading Session

// Preference names accepted by the preference update surface.
const (
	PrefFontSize   = "font_size"
	PrefFontFamily = "font_family"
	PrefTheme      = "theme"
)

/*
Session binds a [StateStore] to one reading client.

Every method is best-effort by contract: read failures resolve like absent
keys, write failures are logged and dropped. A nil session (anonymous
client) short-circuits to defaults everywhere, keeping the reader fully
functional without any state at all.
*/
type Session struct {
	store  StateStore
	logger *slog.Logger
	client string
}

// NewSession constructs a session for a client. Returns nil for an empty
// client identity; all session methods tolerate a nil receiver.
func NewSession(store StateStore, logger *slog.Logger, client string) *Session {
	if client == "" || store == nil {
		return nil
	}
	return &Session{store: store, logger: logger, client: client}
}

// get reads one key, flattening failure into absence.
func (session *Session) get(ctx context.Context, key string) (string, bool) {
	value, ok, err := session.store.Get(ctx, key)
	if err != nil {
		session.logger.Warn("reader_state_read_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return "", false
	}
	return value, ok
}

// set writes one key, swallowing failure.
func (session *Session) set(ctx context.Context, key, value string) {
	if err := session.store.Set(ctx, key, value); err != nil {
		session.logger.Warn("reader_state_write_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// Preferences loads the client's display settings, defaulting each missing
// or unreadable value independently.
func (session *Session) Preferences(ctx context.Context) Preferences {
	prefs := DefaultPreferences()
	if session == nil {
		return prefs
	}

	if value, ok := session.get(ctx, keyFontSize(session.client)); ok {
		prefs.FontSize = value
	}
	if value, ok := session.get(ctx, keyFontFamily(session.client)); ok {
		prefs.FontFamily = value
	}
	if value, ok := session.get(ctx, keyTheme(session.client)); ok {
		prefs.Theme = value
	}

	return prefs.sanitize()
}

// SetPreference persists one display setting. Each preference is stored
// under its own key so updates never clobber the others.
func (session *Session) SetPreference(ctx context.Context, name, value string) {
	if session == nil {
		return
	}

	switch name {
	case PrefFontSize:
		session.set(ctx, keyFontSize(session.client), value)
	case PrefFontFamily:
		session.set(ctx, keyFontFamily(session.client), value)
	case PrefTheme:
		session.set(ctx, keyTheme(session.client), value)
	}
}

// Position returns the persisted last-read page for a (book, chapter)
// pair, or ok=false when nothing usable is stored.
func (session *Session) Position(ctx context.Context, bookID string, chapterNumber int) (int, bool) {
	if session == nil {
		return 0, false
	}

	raw, ok := session.get(ctx, keyPosition(session.client, bookID, chapterNumber))
	if !ok {
		return 0, false
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}

	return page, true
}

// SavePosition persists the current page for a (book, chapter) pair.
func (session *Session) SavePosition(ctx context.Context, bookID string, chapterNumber, page int) {
	if session == nil {
		return
	}
	session.set(ctx, keyPosition(session.client, bookID, chapterNumber), strconv.Itoa(page))
}

// progressMark is the coarse per-book bookmark payload.
type progressMark struct {
	Chapter int `json:"chapter"`
	Page    int `json:"page"`
}

// SaveProgress persists the coarse per-book bookmark. Written on every
// chapter view; only the "continue reading" surface ever reads it back.
func (session *Session) SaveProgress(ctx context.Context, bookID string, chapterNumber, page int) {
	if session == nil {
		return
	}

	payload, err := json.Marshal(progressMark{Chapter: chapterNumber, Page: page})
	if err != nil {
		return
	}
	session.set(ctx, keyProgress(session.client, bookID), string(payload))
}

/*
ResolveInitialPage decides which page a chapter view opens on.

Priority, highest first:
 1. The retreat sentinel (explicit == [LastPage]): the view was reached by
    backing across a chapter boundary, which always lands on the chapter's
    final page. Beats any persisted position.
 2. An explicit page from the request (explicit > 0), clamped.
 3. The persisted position for this exact (book, chapter), clamped.
 4. Page 1.

Clamping matters: a persisted page can exceed the current count after an
admin edits the chapter down, and must land on the last page rather than
out of range.
*/
func (session *Session) ResolveInitialPage(ctx context.Context, bookID string, chapterNumber, explicit, pageCount int) int {
	if explicit == LastPage {
		return ClampPage(pageCount, pageCount)
	}

	if explicit > 0 {
		return ClampPage(explicit, pageCount)
	}

	if persisted, ok := session.Position(ctx, bookID, chapterNumber); ok {
		return ClampPage(persisted, pageCount)
	}

	return 1
}
