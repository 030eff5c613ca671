package backend

import (
	"encoding/json"

	"github.com/starford/notefeed/internal/models"
)

// envelopePaths are the known locations of the note collection inside a
// notes.get response envelope, in priority order. Backend versions have
// shipped every one of these shapes; the empty path means the envelope is
// itself the collection.
var envelopePaths = [][]string{
	{"data", "data"},
	{"data", "value", "data"},
	{"value", "data"},
	{"data"},
	{},
}

// ExtractNotes unwraps a response envelope into a flat note collection.
// The first candidate path holding a JSON array wins. An envelope matching
// no known shape yields an empty slice, never an error.
func ExtractNotes(envelope json.RawMessage) []models.Note {
	for _, path := range envelopePaths {
		candidate, ok := dig(envelope, path)
		if !ok || !isArray(candidate) {
			continue
		}
		var notes []models.Note
		if err := json.Unmarshal(candidate, &notes); err != nil {
			continue
		}
		if notes == nil {
			notes = []models.Note{}
		}
		return notes
	}
	return []models.Note{}
}

// dig walks a chain of object keys. It reports false as soon as a level is
// not an object or a key is absent.
func dig(raw json.RawMessage, path []string) (json.RawMessage, bool) {
	current := raw
	for _, key := range path {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(current, &obj); err != nil {
			return nil, false
		}
		next, ok := obj[key]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// isArray reports whether raw is a JSON array, ignoring leading whitespace.
func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
