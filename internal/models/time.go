package models

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the timestamp shapes the bot has written over its
// lifetime. The snapshot generator emits bare ISO-8601 without an offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// ParseTime parses any of the bot's timestamp shapes: RFC3339 with or
// without fractional seconds, bare ISO-8601, or unix seconds. A value that
// matches nothing yields the zero time rather than an error.
func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Unix(int64(n), 0).UTC()
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FlexTime is a time.Time that unmarshals leniently from the snapshot
// documents. Malformed values degrade to the zero time, never to a decode
// error that would take down the whole document.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	t.Time = ParseTime(s)
	return nil
}
