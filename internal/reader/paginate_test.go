// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minarbd/minar/internal/reader"
)

/*
TestPaginate_MarkerSplitting tests the core content-to-pages contract.
*/
func TestPaginate_MarkerSplitting(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"two_markers_three_pages",
			"first<!-- pagebreak -->second<!-- pagebreak -->third",
			[]string{"first", "second", "third"},
		},
		{
			"segments_trimmed",
			"  first  <!-- pagebreak -->\n\nsecond\n",
			[]string{"first", "second"},
		},
		{
			"empty_segments_dropped",
			"first<!-- pagebreak --><!-- pagebreak -->   <!-- pagebreak -->second",
			[]string{"first", "second"},
		},
		{
			"no_marker_single_page",
			"just one page of text",
			[]string{"just one page of text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Paginate(tt.content))
		})
	}
}

/*
TestPaginate_NeverEmpty verifies the single-page fallback: content that
yields no usable segments still produces exactly one page holding the
original content verbatim.
*/
func TestPaginate_NeverEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty_content", ""},
		{"whitespace_only", "   \n\t  "},
		{"markers_only", "<!-- pagebreak --><!-- pagebreak -->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := reader.Paginate(tt.content)

			require.Len(t, pages, 1)
			assert.Equal(t, tt.content, pages[0])
		})
	}
}

/*
TestClampPage checks boundary clamping into [1, pageCount].
*/
func TestClampPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageCount int
		want      int
	}{
		{"in_range", 3, 6, 3},
		{"below_range", 0, 6, 1},
		{"negative", -4, 6, 1},
		{"above_range_after_edit", 9, 4, 4},
		{"exact_last", 6, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.ClampPage(tt.page, tt.pageCount))
		})
	}
}
