// Package dateutil renders backend timestamps for display. The backend
// encodes timestamps as either epoch milliseconds or ISO-8601 strings
// depending on its version, and may omit them entirely, so formatting is
// total: every input produces four non-empty display strings.
package dateutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sentinels for missing and malformed inputs. The two families are
// distinct so callers can tell "no data" from "bad data".
const (
	NoDateProvided    = "No Date Provided"
	NoTimeProvided    = "No Time Provided"
	InvalidDate       = "Invalid Date"
	InvalidTime       = "Invalid Time"
	InvalidDateFormat = "Invalid Date Format"
)

const (
	dateOnlyLayout = "01-02-2006"
	timeOnlyLayout = "15:04"
	combinedLayout = "01-02-2006 15:04"
)

// Formatted holds the four display renderings of a single timestamp.
type Formatted struct {
	FullDate      string `json:"full_date"`
	DateOnly      string `json:"date_only"`
	TimeOnly      string `json:"time_only"`
	FormattedDate string `json:"formatted_date"`
}

// Format renders a timestamp for display in loc. value may be epoch
// milliseconds (any numeric shape a JSON decode produces), an ISO-8601
// string, a time.Time, or nil. Zero is a valid epoch, not a missing value.
func Format(value any, loc *time.Location) Formatted {
	if loc == nil {
		loc = time.Local
	}
	if value == nil {
		return Formatted{
			FullDate:      NoDateProvided,
			DateOnly:      NoDateProvided,
			TimeOnly:      NoTimeProvided,
			FormattedDate: NoDateProvided,
		}
	}

	var t time.Time
	switch v := value.(type) {
	case float64:
		t = time.UnixMilli(int64(v)).In(loc)
	case int64:
		t = time.UnixMilli(v).In(loc)
	case int:
		t = time.UnixMilli(int64(v)).In(loc)
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return invalid(v.String())
		}
		t = time.UnixMilli(ms).In(loc)
	case string:
		parsed, ok := parseISO(v, loc)
		if !ok {
			return invalid(v)
		}
		t = parsed
	case time.Time:
		t = v.In(loc)
	default:
		return invalid(fmt.Sprint(value))
	}

	return Formatted{
		FullDate:      t.Format(time.RFC3339),
		DateOnly:      t.Format(dateOnlyLayout),
		TimeOnly:      t.Format(timeOnlyLayout),
		FormattedDate: t.Format(combinedLayout),
	}
}

// invalid builds the malformed-input rendering. FullDate echoes the raw
// value so the offending input stays visible to the caller.
func invalid(raw string) Formatted {
	return Formatted{
		FullDate:      raw,
		DateOnly:      InvalidDate,
		TimeOnly:      InvalidTime,
		FormattedDate: InvalidDateFormat,
	}
}

// isoLayouts are the accepted ISO-8601 input shapes, strictest first.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// ParseFull parses a FullDate string produced by Format. It reports false
// for sentinel or otherwise unparsable values, which lets callers treat
// records with broken creation dates explicitly instead of relying on
// whatever a failed parse happens to yield.
func ParseFull(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}
