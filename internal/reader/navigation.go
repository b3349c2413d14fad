// Copyright (c) 2026 Minar. All rights reserved.

package reader

// # Navigation State Machine
//
// The machine ranges over (chapter ordinal, page) pairs. The ordinal is the
// position in the book's fetched chapter list, not the chapter number:
// numbers may have gaps, so "first" and "last" are list boundaries, never
// arithmetic on the numbers themselves.

// Bengali control labels rendered by the frontend.
const (
	LabelNext        = "পরবর্তী"
	LabelNextChapter = "পরের অধ্যায়"
	LabelFinished    = "সমাপ্ত"
	LabelPrevious    = "পূর্ববর্তী"
)

// TransitionKind classifies what an advance or retreat intent resolves to.
type TransitionKind string

const (
	// TransitionPage moves within the current chapter; no content fetch.
	TransitionPage TransitionKind = "page"

	// TransitionChapter crosses a chapter boundary; the target chapter must
	// be fetched and re-paginated before the page lands.
	TransitionChapter TransitionKind = "chapter"

	// TransitionNone is an inert intent at a book boundary.
	TransitionNone TransitionKind = "none"
)

// LastPage marks a cross-chapter retreat target whose page count is unknown
// until the target chapter is fetched and paginated. Retreating always
// lands at the END of the previous chapter, so the concrete page resolves
// on arrival.
const LastPage = -1

// Transition is a resolved navigation intent.
type Transition struct {
	Kind TransitionKind `json:"kind"`

	// ChapterNumber is the target chapter for [TransitionChapter].
	ChapterNumber int `json:"chapter_number,omitempty"`

	// Page is the target page; [LastPage] defers resolution to arrival.
	Page int `json:"page,omitempty"`
}

// Cursor is the current reader position inside a book.
type Cursor struct {
	// Ordinal is the 1-based index of the current chapter in the book's
	// ordered chapter list.
	Ordinal int

	// ChapterNumbers is the full ordered list of chapter numbers. Always
	// the complete list: boundary math needs both ends.
	ChapterNumbers []int

	// Page is the current 1-based page within the chapter.
	Page int

	// PageCount is the pagination result for the current chapter.
	PageCount int
}

// atFirstChapter reports whether the cursor sits in the first listed chapter.
func (c Cursor) atFirstChapter() bool { return c.Ordinal <= 1 }

// atLastChapter reports whether the cursor sits in the last listed chapter.
func (c Cursor) atLastChapter() bool { return c.Ordinal >= len(c.ChapterNumbers) }

/*
Advance resolves a "next" intent.

Description: Inside the chapter it is a plain page increment. On the last
page of a non-final chapter it crosses to the next listed chapter at page 1.
On the last page of the last chapter nothing moves; the frontend only swaps
the control label to the finished indicator.
*/
func (c Cursor) Advance() Transition {
	if c.Page < c.PageCount {
		return Transition{Kind: TransitionPage, Page: c.Page + 1}
	}

	if !c.atLastChapter() {
		return Transition{
			Kind:          TransitionChapter,
			ChapterNumber: c.ChapterNumbers[c.Ordinal],
			Page:          1,
		}
	}

	return Transition{Kind: TransitionNone}
}

/*
Retreat resolves a "previous" intent.

Description: Inside the chapter it is a plain page decrement. On page 1 of
a non-first chapter it crosses to the previous listed chapter at that
chapter's LAST page — retreating always lands at the end of the previous
chapter's content, so the target page stays [LastPage] until the chapter is
fetched and paginated. On page 1 of the first chapter the control is inert.
*/
func (c Cursor) Retreat() Transition {
	if c.Page > 1 {
		return Transition{Kind: TransitionPage, Page: c.Page - 1}
	}

	if !c.atFirstChapter() {
		return Transition{
			Kind:          TransitionChapter,
			ChapterNumber: c.ChapterNumbers[c.Ordinal-2],
			Page:          LastPage,
		}
	}

	return Transition{Kind: TransitionNone}
}

// NextLabel returns the label for the advance control: plain next inside
// the chapter, next-chapter at a crossable boundary, finished at the end of
// the book.
func (c Cursor) NextLabel() string {
	if c.Page < c.PageCount {
		return LabelNext
	}
	if !c.atLastChapter() {
		return LabelNextChapter
	}
	return LabelFinished
}

// CanRetreat reports whether the retreat control is active.
func (c Cursor) CanRetreat() bool {
	return c.Page > 1 || !c.atFirstChapter()
}

/*
Progress computes the overall reading percentage.

Formula: ((ordinal-1 + (page-1)/pageCount) / totalChapters) * 100, clamped
to [0, 100] for display. Each chapter counts as one equal unit regardless
of its page count.
*/
func (c Cursor) Progress() float64 {
	total := len(c.ChapterNumbers)
	if total == 0 || c.PageCount == 0 {
		return 0
	}

	chapterFraction := float64(c.Page-1) / float64(c.PageCount)
	percent := (float64(c.Ordinal-1) + chapterFraction) / float64(total) * 100

	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
