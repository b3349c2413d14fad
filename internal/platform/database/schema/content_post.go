// Copyright (c) 2026 Minar. All rights reserved.

package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table      string
	ID         string
	Slug       string
	Title      string
	Excerpt    string
	Content    string
	CategoryID string
	Tags       string
	Status     string
	ReadTime   string
	ViewCount  string
	CreatedAt  string
	UpdatedAt  string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:      "content.post",
	ID:         "id",
	Slug:       "slug",
	Title:      "title",
	Excerpt:    "excerpt",
	Content:    "content",
	CategoryID: "categoryid",
	Tags:       "tags",
	Status:     "status",
	ReadTime:   "readtime",
	ViewCount:  "viewcount",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Excerpt, t.Content, t.CategoryID, t.Tags,
		t.Status, t.ReadTime, t.ViewCount, t.CreatedAt, t.UpdatedAt,
	}
}
