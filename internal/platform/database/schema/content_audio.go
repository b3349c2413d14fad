// Copyright (c) 2026 Minar. All rights reserved.

package schema

// ContentAudioTable represents the 'content.audio' table
type ContentAudioTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	AudioURL    string
	Duration    string
	CategoryID  string
	CreatedAt   string
}

// ContentAudio is the schema definition for content.audio
var ContentAudio = ContentAudioTable{
	Table:       "content.audio",
	ID:          "id",
	Title:       "title",
	Description: "description",
	AudioURL:    "audiourl",
	Duration:    "duration",
	CategoryID:  "categoryid",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t ContentAudioTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.AudioURL, t.Duration, t.CategoryID, t.CreatedAt}
}
