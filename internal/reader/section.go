// Copyright (c) 2026 Minar. All rights reserved.

package reader

import "github.com/minarbd/minar/internal/content/book"

// # Front Matter Section Sequence
//
// A second, simpler machine runs beside chapter pagination: the fixed walk
// through a book's front matter ending at chapter 1. The two machines share
// the frontend surface but no state — section traversal never touches page
// position persistence.

// Section identifiers. The order of the traversal is fixed; membership is
// per-book, decided by which backing fields hold content.
const (
	SectionTitle         = "title"
	SectionDedication    = "dedication"
	SectionPublisherNote = "publisher-note"
	SectionPreface       = "preface"
	SectionTOC           = "toc"
	SectionChapterOne    = "chapter1"

	// Back matter: addressable directly, but outside the ordered
	// traversal. A reader reaches these from the table of contents, never
	// from previous/next.
	SectionConclusion = "conclusion"
	SectionQA         = "qa"
)

// Section is one resolved entry of a book's section sequence.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// HasContent marks whether the backing book field is non-empty.
	// Sections without content are skipped by prev/next traversal but stay
	// listed so the frontend can grey them out.
	HasContent bool `json:"has_content"`

	// IsChapter marks the terminal pseudo-section that hands over to the
	// chapter reader.
	IsChapter bool `json:"is_chapter"`

	// Content is the backing text for content sections, empty for the
	// title page and table of contents (rendered from book metadata).
	Content string `json:"content,omitempty"`
}

// Sections builds the ordered front-matter sequence for a book. Title page
// and table of contents always have content; the rest depend on their
// backing fields.
func Sections(b *book.Book) []Section {
	return []Section{
		{ID: SectionTitle, Label: "শিরোনাম", HasContent: true},
		{ID: SectionDedication, Label: "উৎসর্গ", HasContent: b.Dedication != "", Content: b.Dedication},
		{ID: SectionPublisherNote, Label: "প্রকাশকের কথা", HasContent: b.PublisherNote != "", Content: b.PublisherNote},
		{ID: SectionPreface, Label: "লেখকের ভূমিকা", HasContent: b.AuthorPreface != "", Content: b.AuthorPreface},
		{ID: SectionTOC, Label: "সূচিপত্র", HasContent: true},
		{ID: SectionChapterOne, Label: "অধ্যায় ১", IsChapter: true},
	}
}

// BackMatter resolves a back-matter section by id, or ok=false when the id
// is not back matter. Empty-backed sections still resolve: the caller
// decides whether an empty conclusion is a 404.
func BackMatter(b *book.Book, id string) (Section, bool) {
	switch id {
	case SectionConclusion:
		return Section{ID: SectionConclusion, Label: "উপসংহার", HasContent: b.Conclusion != "", Content: b.Conclusion}, true
	case SectionQA:
		return Section{ID: SectionQA, Label: "প্রশ্নোত্তর", HasContent: b.QAContent != "", Content: b.QAContent}, true
	}
	return Section{}, false
}

// SectionIndex finds a section's position in the sequence, or -1.
func SectionIndex(sections []Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// PrevSection returns the nearest earlier section with content, skipping
// empty-backed entries entirely. ok=false at the front of the sequence.
func PrevSection(sections []Section, index int) (Section, bool) {
	for i := index - 1; i >= 0; i-- {
		if sections[i].HasContent {
			return sections[i], true
		}
	}
	return Section{}, false
}

// NextSection returns the nearest later section with content or the
// chapter-one handoff, skipping empty-backed entries. ok=false past the
// end of the sequence.
func NextSection(sections []Section, index int) (Section, bool) {
	for i := index + 1; i < len(sections); i++ {
		if sections[i].HasContent || sections[i].IsChapter {
			return sections[i], true
		}
	}
	return Section{}, false
}
