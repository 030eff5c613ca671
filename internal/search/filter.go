package search

import (
	"strings"
	"time"

	"github.com/starford/notefeed/internal/dateutil"
	"github.com/starford/notefeed/internal/models"
)

// Filter returns the records matching query: a case-insensitive substring
// match against the record's display fields, or a date-window match when
// the query is recognized as a date or time. An empty or whitespace-only
// query returns records unchanged, same slice, same order.
func Filter(records []models.NoteDisplay, query string, loc *time.Location) []models.NoteDisplay {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return records
	}
	if loc == nil {
		loc = time.Local
	}
	parsed := ParseQueryDate(trimmed, loc)

	out := make([]models.NoteDisplay, 0, len(records))
	for _, rec := range records {
		if matches(rec, trimmed, parsed, loc) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec models.NoteDisplay, query string, parsed DateParseResult, loc *time.Location) bool {
	if containsFold(rec.ID, query) ||
		containsFold(rec.Title, query) ||
		containsFold(rec.Text, query) ||
		containsFold(rec.AuthorName, query) ||
		(rec.Category != nil && containsFold(*rec.Category, query)) ||
		containsFold(rec.PerformedOn, query) {
		return true
	}

	if !parsed.IsDate {
		return false
	}
	created, ok := dateutil.ParseFull(rec.CreatedOn.FullDate, loc)
	if !ok {
		// Records with an unparsable creation date never date-match.
		return false
	}
	return dateWindowMatch(created, parsed.Value, query)
}

// dateWindowMatch applies a tolerance whose granularity is inferred from
// the tokens present in the typed query: a colon means a time component,
// a 4-digit run means an explicit year, a digit pair with a separator
// means a day/month component. This distinguishes "search by exact day",
// "search by recurring month/day", "search by time of day", and "search
// by precise timestamp" without a structured query syntax.
func dateWindowMatch(created, queried time.Time, query string) bool {
	hasColon := strings.Contains(query, ":")
	hasYearRun := yearRunRe.MatchString(query)

	if !hasColon {
		if !hasYearRun {
			// Year-agnostic anniversary match: "3/15" finds March 15th
			// of any year.
			return created.Month() == queried.Month() && created.Day() == queried.Day()
		}
		cy, cm, cd := created.Date()
		qy, qm, qd := queried.Date()
		return cy == qy && cm == qm && cd == qd
	}

	if !dayMonthPairRe.MatchString(query) && !hasYearRun {
		// Pure time-of-day query: same hour, minutes within 5.
		if created.Hour() != queried.Hour() {
			return false
		}
		diff := created.Minute() - queried.Minute()
		if diff < 0 {
			diff = -diff
		}
		return diff <= 5
	}

	// Full date-time query: timestamps within 10 minutes.
	delta := created.Sub(queried)
	if delta < 0 {
		delta = -delta
	}
	return delta <= 10*time.Minute
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
