// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"context"
	"log/slog"

	"github.com/minarbd/minar/internal/content/book"
	"github.com/minarbd/minar/internal/content/chapter"
	"github.com/minarbd/minar/internal/platform/apperr"
	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/minarbd/minar/internal/platform/validate"
)

// # Service Layer

// Service composes pagination, session state, and navigation into reader
// views.
type Service struct {
	books    *book.Service
	chapters *chapter.Service
	store    StateStore
	guard    *Guard
	logger   *slog.Logger
}

// NewService constructs the reader [Service]. The state store may be nil,
// in which case every client reads as anonymous and the reader runs
// stateless.
func NewService(books *book.Service, chapters *chapter.Service, store StateStore, logger *slog.Logger) *Service {
	return &Service{
		books:    books,
		chapters: chapters,
		store:    store,
		guard:    NewGuard(),
		logger:   logger,
	}
}

// # View Payloads

// BookHeader is the slice of book metadata the reader chrome renders.
type BookHeader struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Author   string `json:"author,omitempty"`
}

// ChapterView is the full payload for one chapter page render.
type ChapterView struct {
	Book    BookHeader `json:"book"`
	Chapter struct {
		ID     string `json:"id"`
		Number int    `json:"number"`
		Title  string `json:"title"`
	} `json:"chapter"`

	// Chapters is the complete ordered table of contents.
	Chapters      []*chapter.Summary `json:"chapters"`
	TotalChapters int                `json:"total_chapters"`

	// Page is the resolved current page; PageContent is its text.
	Page        int    `json:"page"`
	PageCount   int    `json:"page_count"`
	PageContent string `json:"page_content"`

	// Navigation descriptors: what advance/retreat would do from here.
	Advance    Transition `json:"advance"`
	Retreat    Transition `json:"retreat"`
	NextLabel  string     `json:"next_label"`
	CanRetreat bool       `json:"can_retreat"`

	Progress float64 `json:"progress"`

	Preferences Preferences   `json:"preferences"`
	Fonts       []FontOption  `json:"fonts"`
	Themes      []ThemeOption `json:"themes"`
}

// SectionView is the payload for one front/back-matter section render.
type SectionView struct {
	Book     BookHeader `json:"book"`
	Sections []Section  `json:"sections"`
	Current  Section    `json:"current"`

	// Prev/Next are nil at sequence boundaries and for back matter, which
	// sits outside the ordered traversal.
	Prev *Section `json:"prev,omitempty"`
	Next *Section `json:"next,omitempty"`

	Preferences Preferences   `json:"preferences"`
	Fonts       []FontOption  `json:"fonts"`
	Themes      []ThemeOption `json:"themes"`
}

// # Chapter View

/*
ViewChapter builds the reader payload for (book slug, chapter number).

Description: Fetches the book, its full chapter list, and the requested
chapter; paginates the content; resolves the page to open on (explicit
request page, then persisted position, then 1 — each clamped); then fires
the guarded side effects (position write, coarse progress write, view
count) on a detached context.

An explicitPage of 0 means the request carried no page parameter. An
explicitPage of [LastPage] is the cross-chapter retreat descriptor the
service itself hands out: it opens the chapter's final page, which is only
knowable here, after pagination.
*/
func (service *Service) ViewChapter(ctx context.Context, client, slug string, number, explicitPage int) (*ChapterView, error) {
	b, err := service.books.GetBookBySlug(ctx, slug, false)
	if err != nil {
		return nil, err
	}

	summaries, err := service.chapters.ListChapters(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	ordinal := chapterOrdinal(summaries, number)
	if ordinal == 0 {
		return nil, apperr.NotFound("Chapter")
	}

	current, err := service.chapters.GetChapter(ctx, b.ID, number)
	if err != nil {
		return nil, err
	}

	pages := Paginate(current.Content)
	session := NewSession(service.store, service.logger, client)
	page := session.ResolveInitialPage(ctx, b.ID, number, explicitPage, len(pages))

	cursor := Cursor{
		Ordinal:        ordinal,
		ChapterNumbers: chapterNumbers(summaries),
		Page:           page,
		PageCount:      len(pages),
	}

	service.fireSideEffects(client, b.ID, number, page, cursor.NextLabel() == LabelFinished, session)

	view := &ChapterView{
		Book:          header(b),
		Chapters:      summaries,
		TotalChapters: len(summaries),
		Page:          page,
		PageCount:     len(pages),
		PageContent:   pages[page-1],
		Advance:       cursor.Advance(),
		Retreat:       cursor.Retreat(),
		NextLabel:     cursor.NextLabel(),
		CanRetreat:    cursor.CanRetreat(),
		Progress:      cursor.Progress(),
		Preferences:   session.Preferences(ctx),
		Fonts:         FontOptions(),
		Themes:        ThemeOptions(),
	}
	view.Chapter.ID = current.ID
	view.Chapter.Number = current.Number
	view.Chapter.Title = current.Title

	return view, nil
}

// fireSideEffects schedules the best-effort writes a chapter view causes.
// The generation token discards effects from views the client has already
// navigated past; anonymous views skip the guard and always commit the
// view count. A finished view (last page of the last chapter) retires the
// scope's counter once its effects commit, so the guard map only holds
// books still being read; re-opening starts a fresh generation.
func (service *Service) fireSideEffects(client, bookID string, number, page int, finished bool, session *Session) {
	scope := client + "|" + bookID
	var token uint64
	if client != "" {
		token = service.guard.Issue(scope)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.SideEffectTimeout)
		defer cancel()

		if client != "" && !service.guard.IsCurrent(scope, token) {
			return
		}

		session.SavePosition(ctx, bookID, number, page)
		session.SaveProgress(ctx, bookID, number, page)
		service.books.RecordView(bookID)

		if finished && client != "" {
			service.guard.Forget(scope, token)
		}
	}()
}

// # Section View

/*
ViewSection builds the reader payload for a named front/back-matter section.

Description: Front-matter sections resolve prev/next through the ordered
sequence, skipping entries whose backing field is empty. Back matter is
addressable but outside the traversal, so its prev/next stay nil. Unknown
section ids and empty-backed sections are not found.
*/
func (service *Service) ViewSection(ctx context.Context, client, slug, sectionID string) (*SectionView, error) {
	b, err := service.books.GetBookBySlug(ctx, slug, false)
	if err != nil {
		return nil, err
	}

	session := NewSession(service.store, service.logger, client)
	sections := Sections(b)

	view := &SectionView{
		Book:        header(b),
		Sections:    sections,
		Preferences: session.Preferences(ctx),
		Fonts:       FontOptions(),
		Themes:      ThemeOptions(),
	}

	if back, ok := BackMatter(b, sectionID); ok {
		if !back.HasContent {
			return nil, apperr.NotFound("Section")
		}
		view.Current = back
		return view, nil
	}

	index := SectionIndex(sections, sectionID)
	if index < 0 {
		return nil, apperr.NotFound("Section")
	}

	view.Current = sections[index]
	if prev, ok := PrevSection(sections, index); ok {
		view.Prev = &prev
	}
	if next, ok := NextSection(sections, index); ok {
		view.Next = &next
	}

	return view, nil
}

// # Session Surface

// GetPreferences loads a client's display settings with the selectable
// option lists.
func (service *Service) GetPreferences(ctx context.Context, client string) (Preferences, []FontOption, []ThemeOption) {
	session := NewSession(service.store, service.logger, client)
	return session.Preferences(ctx), FontOptions(), ThemeOptions()
}

// UpdatePreference validates and persists one display setting. The write
// itself stays best-effort; only an unknown name or value is an error.
func (service *Service) UpdatePreference(ctx context.Context, client, name, value string) error {
	validator := &validate.Validator{}
	validator.OneOf("name", name, PrefFontSize, PrefFontFamily, PrefTheme)

	switch name {
	case PrefFontSize:
		validator.OneOf("value", value, FontSizeSmall, FontSizeMedium, FontSizeLarge)
	case PrefFontFamily:
		validator.OneOf("value", value, FontDefault, FontNoto, FontHind)
	case PrefTheme:
		validator.OneOf("value", value, ThemeLight, ThemeSepia, ThemeDark)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	session := NewSession(service.store, service.logger, client)
	session.SetPreference(ctx, name, value)
	return nil
}

// SavePosition handles an explicit position save from an intra-chapter
// page flip. Issuing a fresh token here also invalidates any slower side
// effects still in flight from earlier chapter views.
func (service *Service) SavePosition(ctx context.Context, client, bookID string, chapterNumber, page int) error {
	validator := &validate.Validator{}
	validator.Required("book_id", bookID)
	validator.Positive("chapter_number", chapterNumber)
	validator.Positive("page", page)
	if err := validator.Err(); err != nil {
		return err
	}

	if client != "" {
		service.guard.Issue(client + "|" + bookID)
	}

	session := NewSession(service.store, service.logger, client)
	session.SavePosition(ctx, bookID, chapterNumber, page)
	session.SaveProgress(ctx, bookID, chapterNumber, page)
	return nil
}

// # Helpers

func header(b *book.Book) BookHeader {
	return BookHeader{
		ID:       b.ID,
		Slug:     b.Slug,
		Title:    b.Title,
		Subtitle: b.Subtitle,
		Author:   b.Author,
	}
}

// chapterOrdinal returns the 1-based list position of a chapter number, or
// 0 when absent. Ordinals, not numbers, drive boundary math: numbering may
// have gaps.
func chapterOrdinal(summaries []*chapter.Summary, number int) int {
	for i, summary := range summaries {
		if summary.Number == number {
			return i + 1
		}
	}
	return 0
}

func chapterNumbers(summaries []*chapter.Summary) []int {
	numbers := make([]int, len(summaries))
	for i, summary := range summaries {
		numbers[i] = summary.Number
	}
	return numbers
}
