// Copyright (c) 2026 Minar. All rights reserved.

/*
Package reader implements the paginated book reading experience.

It owns four concerns:

  - Pagination: splitting stored chapter content into discrete pages.
  - Session state: per-client reading positions and display preferences.
  - Navigation: the next/previous state machine over (chapter, page) pairs
    and the parallel front-matter section sequence.
  - The HTTP surface that composes these into reader view payloads.

Pages are derived, never persisted: they are recomputed from chapter content
on every load so admin edits can never leave stale page text or counts behind.
Only the page number (an index) is ever stored.
*/
package reader

import "strings"

// Pagebreak is the literal marker delimiting pages inside stored chapter
// content. It is an HTML-comment-shaped substring, not parsed HTML: an
// occurrence pasted into legitimate content will split a page. Accepted
// limitation, kept for compatibility with existing content.
const Pagebreak = "<!-- pagebreak -->"

/*
Paginate splits raw chapter content into an ordered, 1-indexed page sequence.

Description: Splits on the literal [Pagebreak] marker, trims each segment,
and drops segments that are empty after trimming. When nothing survives —
no marker and blank content, or content that was only whitespace — it falls
back to a single page holding the original content verbatim. The result is
therefore never empty, which keeps every downstream page index in range.

Returns:
  - []string: The page sequence, length >= 1
*/
func Paginate(content string) []string {
	segments := strings.Split(content, Pagebreak)

	pages := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	if len(pages) == 0 {
		return []string{content}
	}

	return pages
}

// ClampPage forces a page number into [1, pageCount]. Persisted positions
// can exceed the current count after an admin edits a chapter down; the
// resolution lands on the last page rather than failing.
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}
