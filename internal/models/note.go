// Package models defines the domain types for Notefeed.
package models

// Note is a raw record as returned by the notes.get backend operation.
// Records are immutable once fetched. Timestamp fields arrive as either
// epoch milliseconds or ISO-8601 strings depending on backend version, so
// they stay as decoded JSON values until formatting.
//
// Subject, TagNumbers, Version, SoftwareType, StackReplacements,
// WorkorderID, and StackInspections are not used by the display pipeline
// today but must survive a decode/encode round trip.
type Note struct {
	ID                string   `json:"_id"`
	User              string   `json:"user"`
	Text              string   `json:"text"`
	ExternalNote      bool     `json:"external_note"`
	CreatedOn         any      `json:"created_on"`
	AuthorID          string   `json:"author_id"`
	AuthorName        string   `json:"author_name"`
	EditorID          *string  `json:"editor_id"`
	EditorName        *string  `json:"editor_name"`
	UpdatedOn         any      `json:"updated_on"`
	Subject           *string  `json:"subject"`
	Category          *string  `json:"category"`
	NoteCategory      *string  `json:"note_category"`
	PerformedOn       any      `json:"performed_on"`
	TagNumbers        []string `json:"tag_numbers"`
	Version           *string  `json:"version"`
	SoftwareType      *string  `json:"software_type"`
	StackReplacements *string  `json:"stack_replacements"`
	WorkorderID       *string  `json:"workorder_id"`
	StackInspections  *string  `json:"stack_inspections"`
}
