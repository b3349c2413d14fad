// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minarbd/minar/internal/content/book"
	"github.com/minarbd/minar/internal/reader"
)

func sampleBook() *book.Book {
	return &book.Book{
		ID:            "b-1",
		Title:         "Sample",
		Dedication:    "to the readers",
		AuthorPreface: "why this book exists",
		// PublisherNote deliberately empty: must be skipped in traversal.
	}
}

/*
TestSections_Order verifies the fixed sequence and per-book content flags.
*/
func TestSections_Order(t *testing.T) {
	sections := reader.Sections(sampleBook())

	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}

	assert.Equal(t, []string{
		reader.SectionTitle,
		reader.SectionDedication,
		reader.SectionPublisherNote,
		reader.SectionPreface,
		reader.SectionTOC,
		reader.SectionChapterOne,
	}, ids)

	assert.True(t, sections[0].HasContent, "title page always has content")
	assert.True(t, sections[1].HasContent)
	assert.False(t, sections[2].HasContent, "empty publisher note")
	assert.True(t, sections[4].HasContent, "toc always has content")
	assert.True(t, sections[5].IsChapter)
}

/*
TestSectionTraversal_SkipsEmpty checks that prev/next never land on a
section whose backing field is empty.
*/
func TestSectionTraversal_SkipsEmpty(t *testing.T) {
	sections := reader.Sections(sampleBook())

	t.Run("next_from_dedication_skips_publisher_note", func(t *testing.T) {
		index := reader.SectionIndex(sections, reader.SectionDedication)
		next, ok := reader.NextSection(sections, index)

		require.True(t, ok)
		assert.Equal(t, reader.SectionPreface, next.ID)
	})

	t.Run("prev_from_preface_skips_publisher_note", func(t *testing.T) {
		index := reader.SectionIndex(sections, reader.SectionPreface)
		prev, ok := reader.PrevSection(sections, index)

		require.True(t, ok)
		assert.Equal(t, reader.SectionDedication, prev.ID)
	})

	t.Run("next_from_toc_is_chapter_handoff", func(t *testing.T) {
		index := reader.SectionIndex(sections, reader.SectionTOC)
		next, ok := reader.NextSection(sections, index)

		require.True(t, ok)
		assert.True(t, next.IsChapter)
	})

	t.Run("no_prev_before_title", func(t *testing.T) {
		_, ok := reader.PrevSection(sections, 0)
		assert.False(t, ok)
	})

	t.Run("no_next_after_chapter_handoff", func(t *testing.T) {
		_, ok := reader.NextSection(sections, len(sections)-1)
		assert.False(t, ok)
	})
}

/*
TestSectionTraversal_AllFrontMatterEmpty checks a bare book: title goes
straight to the table of contents.
*/
func TestSectionTraversal_AllFrontMatterEmpty(t *testing.T) {
	sections := reader.Sections(&book.Book{ID: "b-2", Title: "Bare"})

	next, ok := reader.NextSection(sections, 0)

	require.True(t, ok)
	assert.Equal(t, reader.SectionTOC, next.ID)
}

/*
TestBackMatter verifies that conclusion and Q&A resolve by id but stay
outside the ordered traversal.
*/
func TestBackMatter(t *testing.T) {
	withBack := &book.Book{ID: "b-3", Conclusion: "the end"}

	t.Run("resolves_conclusion", func(t *testing.T) {
		section, ok := reader.BackMatter(withBack, reader.SectionConclusion)

		require.True(t, ok)
		assert.True(t, section.HasContent)
		assert.Equal(t, "the end", section.Content)
	})

	t.Run("empty_qa_resolves_without_content", func(t *testing.T) {
		section, ok := reader.BackMatter(withBack, reader.SectionQA)

		require.True(t, ok)
		assert.False(t, section.HasContent)
	})

	t.Run("front_matter_id_is_not_back_matter", func(t *testing.T) {
		_, ok := reader.BackMatter(withBack, reader.SectionPreface)
		assert.False(t, ok)
	})

	t.Run("absent_from_traversal", func(t *testing.T) {
		sections := reader.Sections(withBack)
		assert.Equal(t, -1, reader.SectionIndex(sections, reader.SectionConclusion))
	})
}
