package notes

import "github.com/starford/notefeed/internal/models"

// Page slices records into one page using cursor-based positioning.
// after, when non-empty, names the last record of the previous page; an
// unknown cursor falls back to the start of the list rather than erroring.
// The returned cursor is the ID of the page's last record, empty when no
// records remain beyond it.
func Page(records []models.NoteDisplay, pageSize int, after string) ([]models.NoteDisplay, string) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := 0
	if after != "" {
		for i, rec := range records {
			if rec.ID == after {
				start = i + 1
				break
			}
		}
	}
	if start >= len(records) {
		return []models.NoteDisplay{}, ""
	}

	end := start + pageSize
	more := end < len(records)
	if end > len(records) {
		end = len(records)
	}

	page := records[start:end]
	if more && len(page) > 0 {
		return page, page[len(page)-1].ID
	}
	return page, ""
}
