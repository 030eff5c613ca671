package notes

import (
	"sort"
	"time"

	"github.com/starford/notefeed/internal/dateutil"
	"github.com/starford/notefeed/internal/models"
)

// ToDisplay maps a raw note onto its presentation record. It is total:
// missing or malformed dates degrade to sentinel strings, never errors.
func ToDisplay(note models.Note, loc *time.Location) models.NoteDisplay {
	category := "Note"
	if note.NoteCategory != nil && *note.NoteCategory != "" {
		category = *note.NoteCategory
	}

	// Absent performed-on collapses to a bare "N/A" instead of the
	// formatter's missing-date sentinel. Table consumers rely on it.
	performedOn := "N/A"
	if note.PerformedOn != nil {
		performedOn = dateutil.Format(note.PerformedOn, loc).FormattedDate
	}

	return models.NoteDisplay{
		ID:          note.ID,
		Title:       category + "\ncreated by " + note.AuthorName,
		CreatedOn:   dateutil.Format(note.CreatedOn, loc),
		PerformedOn: performedOn,
		Text:        note.Text,
		AuthorName:  note.AuthorName,
		Category:    note.NoteCategory,
	}
}

// SortByCreatedDesc orders records newest first by creation date. Records
// whose creation date did not parse sort after all dated records, in
// their incoming relative order.
func SortByCreatedDesc(records []models.NoteDisplay, loc *time.Location) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, iok := dateutil.ParseFull(records[i].CreatedOn.FullDate, loc)
		tj, jok := dateutil.ParseFull(records[j].CreatedOn.FullDate, loc)
		switch {
		case iok && jok:
			return ti.After(tj)
		case iok:
			return true
		default:
			return false
		}
	})
}
