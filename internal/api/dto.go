package api

import (
	"github.com/starford/notefeed/internal/dateutil"
	"github.com/starford/notefeed/internal/notes"
)

// NoteListResponse is the GET /notes payload (aliased from the domain
// layer): one page of display records plus an opaque next cursor.
type NoteListResponse = notes.ListResult

// FormattedDate is the GET /dates/format payload.
type FormattedDate = dateutil.Formatted
