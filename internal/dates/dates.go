package dates

import (
	"fmt"
	"time"
)

const (
	inputLayout   = "2.1.2006"
	displayLayout = "2006-01-02"
)

// ParseInput reads a DD.MM.YYYY date as midnight in loc and returns it as
// unix seconds. Leading zeros are optional.
func ParseInput(s string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(inputLayout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.Unix(), nil
}

// Format renders unix seconds as YYYY-MM-DD in loc.
func Format(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format(displayLayout)
}
