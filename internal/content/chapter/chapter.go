// Copyright (c) 2026 Minar. All rights reserved.

// Package chapter implements the ordered reading units of a book.
//
// A chapter's content is one text blob; the reader derives pages from it at
// view time by splitting on the pagebreak marker. Page text is never stored
// separately, so an admin edit can never leave stale page rows behind.
package chapter

import "time"

// Chapter is the full domain entity including content.
type Chapter struct {
	ID     string `json:"id"`
	BookID string `json:"book_id"`

	// Number is positive and unique per book; it defines reading order.
	// Gaps are permitted, so navigation boundaries come from the ordered
	// chapter list rather than min/max arithmetic.
	Number int `json:"chapter_number"`

	Title   string `json:"title"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the lightweight projection used for tables of contents and
// navigation boundary math. The reader always loads the complete list.
type Summary struct {
	ID     string `json:"id"`
	Number int    `json:"chapter_number"`
	Title  string `json:"title"`
}
