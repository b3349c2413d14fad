// Copyright (c) 2026 Minar. All rights reserved.

package reader

// # Display Preferences

// Font sizes.
const (
	FontSizeSmall  = "small"
	FontSizeMedium = "medium"
	FontSizeLarge  = "large"
)

// Font families. The identifiers are stable storage values; the display
// names and CSS stacks are what the frontend renders.
const (
	FontDefault = "default"
	FontNoto    = "noto"
	FontHind    = "hind"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeSepia = "sepia"
	ThemeDark  = "dark"
)

// Preferences is the set of global display settings for one reading client.
// They apply across all books and are persisted independently of any
// reading position.
type Preferences struct {
	FontSize   string `json:"font_size"`
	FontFamily string `json:"font_family"`
	Theme      string `json:"theme"`
}

// DefaultPreferences returns the settings used when nothing is persisted,
// or when the state store is unavailable.
func DefaultPreferences() Preferences {
	return Preferences{
		FontSize:   FontSizeMedium,
		FontFamily: FontDefault,
		Theme:      ThemeLight,
	}
}

// FontOption describes one selectable font family.
type FontOption struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Family string `json:"family"`
}

// ThemeOption describes one selectable theme with its palette.
type ThemeOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"bg"`
	Text       string `json:"text"`
	Secondary  string `json:"secondary"`
}

// FontOptions lists the selectable font families in display order.
func FontOptions() []FontOption {
	return []FontOption{
		{ID: FontDefault, Name: "ডিফল্ট", Family: "inherit"},
		{ID: FontNoto, Name: "Noto Serif", Family: `"Noto Serif Bengali", serif`},
		{ID: FontHind, Name: "Hind Siliguri", Family: `"Hind Siliguri", sans-serif`},
	}
}

// ThemeOptions lists the selectable themes in display order.
func ThemeOptions() []ThemeOption {
	return []ThemeOption{
		{ID: ThemeLight, Name: "লাইট", Background: "#ffffff", Text: "#222222", Secondary: "#666666"},
		{ID: ThemeSepia, Name: "সেপিয়া", Background: "#f4ecd8", Text: "#5b4636", Secondary: "#7a6451"},
		{ID: ThemeDark, Name: "ডার্ক", Background: "#1a1a2e", Text: "#f0f0f0", Secondary: "#b0b0b0"},
	}
}

// validFontSize reports whether the value is a known font size.
func validFontSize(value string) bool {
	return value == FontSizeSmall || value == FontSizeMedium || value == FontSizeLarge
}

// validFontFamily reports whether the value is a known font family.
func validFontFamily(value string) bool {
	return value == FontDefault || value == FontNoto || value == FontHind
}

// validTheme reports whether the value is a known theme.
func validTheme(value string) bool {
	return value == ThemeLight || value == ThemeSepia || value == ThemeDark
}

// sanitize replaces unknown persisted values with the defaults. Stored
// state is client-supplied and unauthenticated, so it is never trusted to
// be a valid enum member.
func (p Preferences) sanitize() Preferences {
	defaults := DefaultPreferences()
	if !validFontSize(p.FontSize) {
		p.FontSize = defaults.FontSize
	}
	if !validFontFamily(p.FontFamily) {
		p.FontFamily = defaults.FontFamily
	}
	if !validTheme(p.Theme) {
		p.Theme = defaults.Theme
	}
	return p
}
