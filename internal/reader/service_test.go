// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minarbd/minar/internal/content/book"
	"github.com/minarbd/minar/internal/content/chapter"
	"github.com/minarbd/minar/internal/platform/apperr"
	"github.com/minarbd/minar/internal/reader"
)

// # Fakes

type fakeBookRepo struct {
	books map[string]*book.Book // keyed by slug
	views atomic.Int64
}

func (r *fakeBookRepo) List(context.Context, book.Filter, int, int) ([]*book.Book, int, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (r *fakeBookRepo) FindBySlug(_ context.Context, slug string) (*book.Book, error) {
	if b, ok := r.books[slug]; ok {
		return b, nil
	}
	return nil, apperr.NotFound("Book")
}

func (r *fakeBookRepo) Create(context.Context, *book.Book) error { return nil }
func (r *fakeBookRepo) Update(context.Context, *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(context.Context, string) error     { return nil }

func (r *fakeBookRepo) IncrementViewCount(_ context.Context, _ string, delta int64) error {
	r.views.Add(delta)
	return nil
}

type fakeChapterRepo struct {
	chapters []*chapter.Chapter // ordered by number
}

func (r *fakeChapterRepo) ListByBook(_ context.Context, bookID string) ([]*chapter.Summary, error) {
	var summaries []*chapter.Summary
	for _, c := range r.chapters {
		if c.BookID == bookID {
			summaries = append(summaries, &chapter.Summary{ID: c.ID, Number: c.Number, Title: c.Title})
		}
	}
	return summaries, nil
}

func (r *fakeChapterRepo) FindByNumber(_ context.Context, bookID string, number int) (*chapter.Chapter, error) {
	for _, c := range r.chapters {
		if c.BookID == bookID && c.Number == number {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Chapter")
}

func (r *fakeChapterRepo) FindByID(_ context.Context, id string) (*chapter.Chapter, error) {
	for _, c := range r.chapters {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Chapter")
}

func (r *fakeChapterRepo) Create(context.Context, *chapter.Chapter) error { return nil }
func (r *fakeChapterRepo) Update(context.Context, *chapter.Chapter) error { return nil }
func (r *fakeChapterRepo) Delete(context.Context, string) error           { return nil }

// # Fixture

func newFixture(t *testing.T) (*reader.Service, *reader.MemoryStore, *fakeBookRepo) {
	t.Helper()

	bookRepo := &fakeBookRepo{books: map[string]*book.Book{
		"sirat": {
			ID:         "b-1",
			Slug:       "sirat",
			Title:      "সীরাত",
			Author:     "Author",
			Dedication: "উৎসর্গ পাতা",
		},
	}}

	chapterRepo := &fakeChapterRepo{chapters: []*chapter.Chapter{
		{ID: "c-1", BookID: "b-1", Number: 1, Title: "এক",
			Content: "p1<!-- pagebreak -->p2<!-- pagebreak -->p3"},
		{ID: "c-2", BookID: "b-1", Number: 2, Title: "দুই",
			Content: "only page"},
	}}

	logger := discardLogger()
	store := reader.NewMemoryStore()
	service := reader.NewService(
		book.NewService(bookRepo, logger),
		chapter.NewService(chapterRepo, logger),
		store,
		logger,
	)

	return service, store, bookRepo
}

// # Chapter View

func TestService_ViewChapter(t *testing.T) {
	ctx := context.Background()

	t.Run("first_visit_opens_page_one", func(t *testing.T) {
		service, _, _ := newFixture(t)

		view, err := service.ViewChapter(ctx, "client", "sirat", 1, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, view.Page)
		assert.Equal(t, 3, view.PageCount)
		assert.Equal(t, "p1", view.PageContent)
		assert.Equal(t, 2, view.TotalChapters)
		assert.Equal(t, reader.LabelNext, view.NextLabel)
		assert.False(t, view.CanRetreat)
	})

	t.Run("explicit_page_parameter_wins", func(t *testing.T) {
		service, _, _ := newFixture(t)

		view, err := service.ViewChapter(ctx, "client", "sirat", 1, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, view.Page)
		assert.Equal(t, "p3", view.PageContent)
		assert.Equal(t, reader.LabelNextChapter, view.NextLabel)
		assert.Equal(t, reader.Transition{
			Kind: reader.TransitionChapter, ChapterNumber: 2, Page: 1,
		}, view.Advance)
	})

	t.Run("view_persists_position_async", func(t *testing.T) {
		service, store, _ := newFixture(t)

		_, err := service.ViewChapter(ctx, "client", "sirat", 1, 2)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			value, ok, _ := store.Get(ctx, "client:book:b-1:ch:1:page")
			return ok && value == "2"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("returning_client_resumes_persisted_page", func(t *testing.T) {
		service, store, _ := newFixture(t)
		require.NoError(t, store.Set(ctx, "client:book:b-1:ch:1:page", "3"))

		view, err := service.ViewChapter(ctx, "client", "sirat", 1, 0)

		require.NoError(t, err)
		assert.Equal(t, 3, view.Page)
	})

	t.Run("stale_persisted_page_clamped", func(t *testing.T) {
		service, store, _ := newFixture(t)
		require.NoError(t, store.Set(ctx, "client:book:b-1:ch:2:page", "9"))

		view, err := service.ViewChapter(ctx, "client", "sirat", 2, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, view.Page, "single-page chapter clamps persisted 9 to 1")
		assert.Equal(t, reader.LabelFinished, view.NextLabel)
	})

	t.Run("retreat_lands_on_previous_chapter_last_page", func(t *testing.T) {
		service, store, _ := newFixture(t)
		// A persisted position must not hijack a boundary retreat.
		require.NoError(t, store.Set(ctx, "client:book:b-1:ch:1:page", "1"))

		view, err := service.ViewChapter(ctx, "client", "sirat", 2, 0)
		require.NoError(t, err)
		require.Equal(t, reader.Transition{
			Kind:          reader.TransitionChapter,
			ChapterNumber: 1,
			Page:          reader.LastPage,
		}, view.Retreat)

		// Follow the descriptor the payload itself handed out.
		view, err = service.ViewChapter(ctx, "client", "sirat", view.Retreat.ChapterNumber, view.Retreat.Page)
		require.NoError(t, err)
		assert.Equal(t, 3, view.Page)
		assert.Equal(t, "p3", view.PageContent)
		assert.Equal(t, reader.LabelNextChapter, view.NextLabel)
	})

	t.Run("finished_book_releases_guard_scope", func(t *testing.T) {
		service, store, _ := newFixture(t)

		// The single page of the final chapter.
		_, err := service.ViewChapter(ctx, "client", "sirat", 2, 0)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			_, ok, _ := store.Get(ctx, "client:book:b-1:ch:2:page")
			return ok
		}, time.Second, 5*time.Millisecond)

		// Re-opening the book starts a fresh generation whose effects
		// still commit.
		_, err = service.ViewChapter(ctx, "client", "sirat", 1, 2)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			value, ok, _ := store.Get(ctx, "client:book:b-1:ch:1:page")
			return ok && value == "2"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("view_records_book_view", func(t *testing.T) {
		service, _, bookRepo := newFixture(t)

		_, err := service.ViewChapter(ctx, "client", "sirat", 1, 0)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			return bookRepo.views.Load() == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("missing_book_is_not_found", func(t *testing.T) {
		service, _, _ := newFixture(t)

		_, err := service.ViewChapter(ctx, "client", "nope", 1, 0)

		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})

	t.Run("missing_chapter_is_not_found", func(t *testing.T) {
		service, _, _ := newFixture(t)

		_, err := service.ViewChapter(ctx, "client", "sirat", 42, 0)

		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})
}

// # Section View

func TestService_ViewSection(t *testing.T) {
	ctx := context.Background()

	t.Run("dedication_with_neighbours", func(t *testing.T) {
		service, _, _ := newFixture(t)

		view, err := service.ViewSection(ctx, "client", "sirat", reader.SectionDedication)

		require.NoError(t, err)
		assert.Equal(t, "উৎসর্গ পাতা", view.Current.Content)
		require.NotNil(t, view.Prev)
		assert.Equal(t, reader.SectionTitle, view.Prev.ID)
		require.NotNil(t, view.Next)
		assert.Equal(t, reader.SectionTOC, view.Next.ID, "empty preface and note skipped")
	})

	t.Run("unknown_section_not_found", func(t *testing.T) {
		service, _, _ := newFixture(t)

		_, err := service.ViewSection(ctx, "client", "sirat", "appendix")

		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})

	t.Run("empty_back_matter_not_found", func(t *testing.T) {
		service, _, _ := newFixture(t)

		_, err := service.ViewSection(ctx, "client", "sirat", reader.SectionConclusion)

		require.Error(t, err)
		assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	})
}

// # Preferences & Position

func TestService_Preferences(t *testing.T) {
	ctx := context.Background()

	t.Run("round_trip", func(t *testing.T) {
		service, _, _ := newFixture(t)

		err := service.UpdatePreference(ctx, "client", reader.PrefTheme, reader.ThemeSepia)
		require.NoError(t, err)

		prefs, fonts, themes := service.GetPreferences(ctx, "client")
		assert.Equal(t, reader.ThemeSepia, prefs.Theme)
		assert.Len(t, fonts, 3)
		assert.Len(t, themes, 3)
	})

	t.Run("rejects_unknown_value", func(t *testing.T) {
		service, _, _ := newFixture(t)

		err := service.UpdatePreference(ctx, "client", reader.PrefFontSize, "huge")

		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		service, _, _ := newFixture(t)

		err := service.UpdatePreference(ctx, "client", "margin", "wide")
		require.Error(t, err)
	})
}

func TestService_SavePosition(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit_save", func(t *testing.T) {
		service, store, _ := newFixture(t)

		err := service.SavePosition(ctx, "client", "b-1", 1, 2)
		require.NoError(t, err)

		value, ok, _ := store.Get(ctx, "client:book:b-1:ch:1:page")
		require.True(t, ok)
		assert.Equal(t, "2", value)
	})

	t.Run("invalid_payload_rejected", func(t *testing.T) {
		service, _, _ := newFixture(t)

		assert.Error(t, service.SavePosition(ctx, "client", "", 1, 2))
		assert.Error(t, service.SavePosition(ctx, "client", "b-1", 0, 2))
		assert.Error(t, service.SavePosition(ctx, "client", "b-1", 1, 0))
	})
}
