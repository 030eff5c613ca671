package models

import "github.com/starford/notefeed/internal/dateutil"

// NoteDisplay is the presentation-ready projection of a Note. Displays are
// rebuilt on every transform pass and never persisted.
type NoteDisplay struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// CreatedOn carries the formatted creation timestamp.
	CreatedOn dateutil.Formatted `json:"created_on"`
	// PerformedOn is the formatted performed-on timestamp, or the literal
	// "N/A" when the backend recorded none.
	PerformedOn string  `json:"performed_on"`
	Text        string  `json:"text"`
	AuthorName  string  `json:"author_name"`
	Category    *string `json:"category,omitempty"`
}
