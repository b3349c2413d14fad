// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minarbd/minar/internal/reader"
)

func cursor(ordinal, page, pageCount int, numbers ...int) reader.Cursor {
	return reader.Cursor{
		Ordinal:        ordinal,
		ChapterNumbers: numbers,
		Page:           page,
		PageCount:      pageCount,
	}
}

/*
TestCursor_Advance tests the "next" transitions across all boundaries.
*/
func TestCursor_Advance(t *testing.T) {
	tests := []struct {
		name string
		c    reader.Cursor
		want reader.Transition
	}{
		{
			"intra_chapter_increment",
			cursor(1, 2, 5, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionPage, Page: 3},
		},
		{
			"last_page_crosses_chapter",
			cursor(1, 5, 5, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionChapter, ChapterNumber: 2, Page: 1},
		},
		{
			"crosses_over_number_gap",
			cursor(2, 3, 3, 1, 2, 7),
			reader.Transition{Kind: reader.TransitionChapter, ChapterNumber: 7, Page: 1},
		},
		{
			"last_page_of_last_chapter_inert",
			cursor(3, 4, 4, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Advance())
		})
	}
}

/*
TestCursor_Retreat tests the "previous" transitions, including the landing
on the previous chapter's final page.
*/
func TestCursor_Retreat(t *testing.T) {
	tests := []struct {
		name string
		c    reader.Cursor
		want reader.Transition
	}{
		{
			"intra_chapter_decrement",
			cursor(2, 3, 5, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionPage, Page: 2},
		},
		{
			"page_one_lands_on_previous_last_page",
			cursor(2, 1, 5, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionChapter, ChapterNumber: 1, Page: reader.LastPage},
		},
		{
			"first_chapter_page_one_inert",
			cursor(1, 1, 5, 1, 2, 3),
			reader.Transition{Kind: reader.TransitionNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Retreat())
		})
	}
}

/*
TestCursor_NextLabel checks the advance control wording at each boundary.
*/
func TestCursor_NextLabel(t *testing.T) {
	tests := []struct {
		name string
		c    reader.Cursor
		want string
	}{
		{"mid_chapter", cursor(1, 1, 3, 1, 2), reader.LabelNext},
		{"chapter_boundary", cursor(1, 3, 3, 1, 2), reader.LabelNextChapter},
		{"book_end", cursor(2, 3, 3, 1, 2), reader.LabelFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.NextLabel())
		})
	}
}

func TestCursor_CanRetreat(t *testing.T) {
	assert.False(t, cursor(1, 1, 5, 1, 2).CanRetreat())
	assert.True(t, cursor(1, 2, 5, 1, 2).CanRetreat())
	assert.True(t, cursor(2, 1, 5, 1, 2).CanRetreat())
}

/*
TestCursor_Progress verifies the percentage formula and its display clamp.
Chapter 2 of 4, page 3 of 6: ((2-1 + (3-1)/6) / 4) * 100 = 33.33...%.
*/
func TestCursor_Progress(t *testing.T) {
	tests := []struct {
		name string
		c    reader.Cursor
		want float64
	}{
		{"reference_point", cursor(2, 3, 6, 1, 2, 3, 4), 100.0 * (1.0 + 2.0/6.0) / 4.0},
		{"book_start", cursor(1, 1, 6, 1, 2, 3, 4), 0},
		{"final_page_below_hundred", cursor(4, 6, 6, 1, 2, 3, 4), 100.0 * (3.0 + 5.0/6.0) / 4.0},
		{"no_chapters", reader.Cursor{Page: 1, PageCount: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.c.Progress(), 0.0001)
		})
	}

	t.Run("reference_point_is_33_percent", func(t *testing.T) {
		assert.InDelta(t, 33.3333, cursor(2, 3, 6, 1, 2, 3, 4).Progress(), 0.01)
	})
}
