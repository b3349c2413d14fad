// Copyright (c) 2026 Minar. All rights reserved.

package schema

// ContentChapterTable represents the 'content.chapter' table
type ContentChapterTable struct {
	Table     string
	ID        string
	BookID    string
	Number    string
	Title     string
	Content   string
	CreatedAt string
	UpdatedAt string
}

// ContentChapter is the schema definition for content.chapter
//
// Number is a positive integer unique per book; it defines reading order.
// Content is a single text blob; page boundaries live inside it as literal
// pagebreak markers and are never materialized as rows.
var ContentChapter = ContentChapterTable{
	Table:     "content.chapter",
	ID:        "id",
	BookID:    "bookid",
	Number:    "chapternumber",
	Title:     "title",
	Content:   "content",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentChapterTable) Columns() []string {
	return []string{t.ID, t.BookID, t.Number, t.Title, t.Content, t.CreatedAt, t.UpdatedAt}
}
