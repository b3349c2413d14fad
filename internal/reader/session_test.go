// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minarbd/minar/internal/reader"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestSession_InitialPageResolution walks the full priority order: the
cross-chapter retreat sentinel, then an explicit request page, then the
persisted position, then page 1 — each clamped.
*/
func TestSession_InitialPageResolution(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		persisted int
		explicit  int
		pageCount int
		want      int
	}{
		{"default_page_one", 0, 0, 6, 1},
		{"persisted_wins_over_default", 4, 0, 6, 4},
		{"explicit_wins_over_persisted", 4, 2, 6, 2},
		{"explicit_clamped_high", 0, 99, 6, 6},
		{"persisted_nine_clamped_to_four", 9, 0, 4, 4},
		{"retreat_sentinel_opens_last_page", 0, reader.LastPage, 6, 6},
		{"retreat_sentinel_beats_persisted", 2, reader.LastPage, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := reader.NewMemoryStore()
			session := reader.NewSession(store, discardLogger(), "client-1")
			require.NotNil(t, session)

			if tt.persisted > 0 {
				session.SavePosition(ctx, "book-1", 3, tt.persisted)
			}

			got := session.ResolveInitialPage(ctx, "book-1", 3, tt.explicit, tt.pageCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestSession_PositionsAreChapterScoped verifies that each chapter keeps its
own independent position.
*/
func TestSession_PositionsAreChapterScoped(t *testing.T) {
	ctx := context.Background()
	store := reader.NewMemoryStore()
	session := reader.NewSession(store, discardLogger(), "client-1")

	session.SavePosition(ctx, "book-1", 1, 5)
	session.SavePosition(ctx, "book-1", 2, 2)

	assert.Equal(t, 5, session.ResolveInitialPage(ctx, "book-1", 1, 0, 9))
	assert.Equal(t, 2, session.ResolveInitialPage(ctx, "book-1", 2, 0, 9))
	assert.Equal(t, 1, session.ResolveInitialPage(ctx, "book-1", 3, 0, 9))
}

/*
TestSession_Preferences covers defaults, round-trips, and the sanitizing of
unknown stored values.
*/
func TestSession_Preferences(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults_when_empty", func(t *testing.T) {
		session := reader.NewSession(reader.NewMemoryStore(), discardLogger(), "c")

		prefs := session.Preferences(ctx)

		assert.Equal(t, reader.FontSizeMedium, prefs.FontSize)
		assert.Equal(t, reader.FontDefault, prefs.FontFamily)
		assert.Equal(t, reader.ThemeLight, prefs.Theme)
	})

	t.Run("independent_round_trip", func(t *testing.T) {
		session := reader.NewSession(reader.NewMemoryStore(), discardLogger(), "c")

		session.SetPreference(ctx, reader.PrefTheme, reader.ThemeSepia)
		prefs := session.Preferences(ctx)

		assert.Equal(t, reader.ThemeSepia, prefs.Theme)
		assert.Equal(t, reader.FontSizeMedium, prefs.FontSize, "untouched settings stay default")
	})

	t.Run("garbage_values_sanitized", func(t *testing.T) {
		store := reader.NewMemoryStore()
		session := reader.NewSession(store, discardLogger(), "c")

		session.SetPreference(ctx, reader.PrefTheme, reader.ThemeDark)
		require.NoError(t, store.Set(ctx, "c:font-size", "enormous"))

		prefs := session.Preferences(ctx)

		assert.Equal(t, reader.FontSizeMedium, prefs.FontSize)
		assert.Equal(t, reader.ThemeDark, prefs.Theme)
	})
}

/*
TestSession_SilentDegradation verifies the failure contract: store errors
never surface, reads fall back to defaults, and writes are dropped.
*/
func TestSession_SilentDegradation(t *testing.T) {
	ctx := context.Background()

	t.Run("read_failure_yields_defaults", func(t *testing.T) {
		store := reader.NewMemoryStore()
		store.FailReads = true
		session := reader.NewSession(store, discardLogger(), "c")

		assert.Equal(t, reader.DefaultPreferences(), session.Preferences(ctx))
		assert.Equal(t, 1, session.ResolveInitialPage(ctx, "book-1", 1, 0, 5))
	})

	t.Run("write_failure_is_swallowed", func(t *testing.T) {
		store := reader.NewMemoryStore()
		store.FailWrites = true
		session := reader.NewSession(store, discardLogger(), "c")

		session.SavePosition(ctx, "book-1", 1, 3)
		session.SetPreference(ctx, reader.PrefTheme, reader.ThemeDark)

		assert.Equal(t, 0, store.Len())
	})

	t.Run("anonymous_client_is_stateless", func(t *testing.T) {
		session := reader.NewSession(reader.NewMemoryStore(), discardLogger(), "")

		require.Nil(t, session)
		assert.Equal(t, reader.DefaultPreferences(), session.Preferences(ctx))
		assert.Equal(t, 1, session.ResolveInitialPage(ctx, "b", 1, 0, 5))
	})

	t.Run("corrupt_persisted_page_ignored", func(t *testing.T) {
		store := reader.NewMemoryStore()
		session := reader.NewSession(store, discardLogger(), "c")
		require.NoError(t, store.Set(ctx, "c:book:b:ch:1:page", "not-a-number"))

		assert.Equal(t, 1, session.ResolveInitialPage(ctx, "b", 1, 0, 5))
	})
}
