// Copyright (c) 2026 Minar. All rights reserved.

// Package schema centralizes table and column names for the content store.
//
// Repositories build their SQL from these constants so a column rename is a
// single-file change.
package schema

// ContentBookTable represents the 'content.book' table
type ContentBookTable struct {
	Table         string
	ID            string
	Title         string
	Subtitle      string
	Slug          string
	Author        string
	Publisher     string
	Description   string
	CoverImage    string
	Price         string
	Dedication    string
	PublisherNote string
	AuthorPreface string
	Conclusion    string
	QAContent     string
	IsPublished   string
	ViewCount     string
	CreatedAt     string
	UpdatedAt     string
}

// ContentBook is the schema definition for content.book
var ContentBook = ContentBookTable{
	Table:         "content.book",
	ID:            "id",
	Title:         "title",
	Subtitle:      "subtitle",
	Slug:          "slug",
	Author:        "author",
	Publisher:     "publisher",
	Description:   "description",
	CoverImage:    "coverimage",
	Price:         "price",
	Dedication:    "dedication",
	PublisherNote: "publishernote",
	AuthorPreface: "authorpreface",
	Conclusion:    "conclusion",
	QAContent:     "qacontent",
	IsPublished:   "ispublished",
	ViewCount:     "viewcount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t ContentBookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Subtitle, t.Slug, t.Author, t.Publisher, t.Description,
		t.CoverImage, t.Price, t.Dedication, t.PublisherNote, t.AuthorPreface,
		t.Conclusion, t.QAContent, t.IsPublished, t.ViewCount, t.CreatedAt, t.UpdatedAt,
	}
}
