package weights

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	DateLayout,
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate accepts the date formats the weigh-in forms send and returns UTC
// midnight of that calendar day. RFC 3339 values keep their own calendar day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
