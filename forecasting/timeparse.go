package forecasting

import "time"

// timestampLayouts are tried in order when parsing record timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseTimestamp parses a record timestamp and remembers which layout
// matched so future timestamps can be rendered the same way.
func parseTimestamp(s string) (time.Time, string, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout, true
		}
	}
	return time.Time{}, "", false
}
