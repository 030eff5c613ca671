// Package search implements date-aware fuzzy filtering of note displays.
// A free-text query is first checked against a catalogue of date and time
// patterns; when recognized, records can match on a granularity-dependent
// date window in addition to plain substring matching.
package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateParseResult reports whether a free-text query was recognized as a
// date or time pattern and, if so, the resolved value in the caller's
// timezone.
type DateParseResult struct {
	IsDate bool
	Value  time.Time
	// Filters carries candidate backend filter strings. It is retained
	// for response-shape compatibility and is not populated.
	Filters []string
}

// queryLayouts is the fixed catalogue of explicit date/time patterns,
// tried in priority order against the raw query. The first layout that
// parses wins, so month-first forms sit ahead of day-first forms and
// ambiguous input resolves the same way every time. Go's single-digit
// layout tokens also accept zero-padded input, which keeps the catalogue
// shorter than the pattern list it mirrors.
var queryLayouts = []string{
	"1/2/2006",
	"2/1/2006", // day-first; only distinguishable when the day exceeds 12
	"2-1-2006",
	"2006/01/02",
	"2006-01-02",
	"2006.01.02",
	"1/2/2006, 3:04 PM",
	"2/1/2006, 3:04 PM",
	"1/2/2006 15:04",
	"2/1/2006 15:04",
	"2006/01/02 15:04",
	"2006-01-02 15:04",
	"3:04 PM",
	"15:04",
	"1/2006",
	"1-2006",
	"2006/1",
	"2006-1",
	"1/2",
	"2/1",
}

var (
	digitRunRe        = regexp.MustCompile(`^\d+$`)
	yearRunRe         = regexp.MustCompile(`\d{4}`)
	dayMonthPairRe    = regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}`)
	separatorStripper = strings.NewReplacer("/", "", "-", "", ".", "")
)

// ParseQueryDate interprets query as a date or time pattern in loc.
// Explicit layouts are tried first; failing those, a separator-free run of
// six or more digits is tried under three positional year/month/day
// interpretations, which bounds the ambiguity of input like "20240315" to
// a year-position guess. Parse failures are swallowed: recognition simply
// reports not-a-date.
func ParseQueryDate(query string, loc *time.Location) DateParseResult {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range queryLayouts {
		if t, err := time.ParseInLocation(layout, query, loc); err == nil {
			return DateParseResult{IsDate: true, Value: t}
		}
	}

	normalized := separatorStripper.Replace(query)
	if len(normalized) >= 6 && digitRunRe.MatchString(normalized) {
		if t, ok := parseDigitRun(normalized, loc); ok {
			return DateParseResult{IsDate: true, Value: t}
		}
	}
	return DateParseResult{}
}

// digitRunOffsets are the positional interpretations of an eight-digit
// run: year-first, month-first-then-year, day-first-then-year. Byte
// offsets select year(4)/month(2)/day(2) within the run.
var digitRunOffsets = []struct{ year, month, day int }{
	{year: 0, month: 4, day: 6},
	{year: 4, month: 0, day: 2},
	{year: 4, month: 2, day: 0},
}

func parseDigitRun(run string, loc *time.Location) (time.Time, bool) {
	for _, off := range digitRunOffsets {
		need := off.year + 4
		if off.month+2 > need {
			need = off.month + 2
		}
		if off.day+2 > need {
			need = off.day + 2
		}
		if len(run) < need {
			continue
		}

		year, _ := strconv.Atoi(run[off.year : off.year+4])
		month, _ := strconv.Atoi(run[off.month : off.month+2])
		day, _ := strconv.Atoi(run[off.day : off.day+2])
		if year < 2000 || year > 2050 || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}

		iso := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if t, err := time.ParseInLocation("2006-01-02", iso, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
