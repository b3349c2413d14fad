// Copyright (c) 2026 Minar. All rights reserved.

// Package book implements the catalogue of multi-page books: the domain
// model, business services, and HTTP surface.
package book

import "time"

// Book is the aggregate root for a published work.
//
// Front matter (Dedication, PublisherNote, AuthorPreface) and back matter
// (Conclusion, QAContent) are optional; an empty string means the section
// does not exist and is skipped by the reader's section traversal.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Slug        string `json:"slug"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher,omitempty"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	Price       string `json:"price,omitempty"`

	// Front matter
	Dedication    string `json:"dedication,omitempty"`
	PublisherNote string `json:"publisher_note,omitempty"`
	AuthorPreface string `json:"author_preface,omitempty"`

	// Back matter
	Conclusion string `json:"conclusion,omitempty"`
	QAContent  string `json:"qa_content,omitempty"`

	IsPublished bool      `json:"is_published"`
	ViewCount   int64     `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasFrontMatter reports whether any optional front-matter section exists.
func (b *Book) HasFrontMatter() bool {
	return b.Dedication != "" || b.PublisherNote != "" || b.AuthorPreface != ""
}

// HasBackMatter reports whether any optional back-matter section exists.
func (b *Book) HasBackMatter() bool {
	return b.Conclusion != "" || b.QAContent != ""
}

// Filter narrows book list queries.
type Filter struct {
	// PublishedOnly hides drafts; always true on the public surface.
	PublishedOnly bool
}
