package utils

import (
	"time"
)

// Time serializes with millisecond precision in UTC, matching the timestamp-millis
// fields of the published events.
type Time struct {
	time.Time
}

func Now() Time {
	return Time{Time: time.Now().UTC().Truncate(time.Millisecond)}
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return []byte(`"` + formatted + `"`), nil
}
