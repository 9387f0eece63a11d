// Package time provides the temporal primitives behind datetime flavored
// fields: layout based parsing, ISO output forms and unix epoch conversion.
package time

import (
	"strings"
	"time"
)

// Reference layouts for the ISO output forms of the three temporal kinds.
const (
	DateTimeLayout = time.RFC3339
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04:05"
)

// Parse interprets value with the given layout, an empty layout defaults to
// RFC3339. A mismatched "T" separator and surplus precision on either side
// are tolerated.
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		if len(value) > len(layout) {
			t, err = time.ParseInLocation(layout, value[:len(layout)], time.UTC)
		} else {
			t, err = time.ParseInLocation(layout[:len(value)], value, time.UTC)
		}
	}
	return t, err
}

// Format renders t with layout, an empty layout defaults to RFC3339.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = time.RFC3339
	}
	return t.Format(layout)
}

// ISODateTime returns the RFC3339 form of t.
func ISODateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ISODate returns the date-only ISO form of t.
func ISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// ISOClock returns the time-of-day ISO form of t.
func ISOClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// DateOf projects out the date part of t (midnight UTC).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockOf projects out the time-of-day part of t (zero date, UTC).
func ClockOf(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Epoch returns t as unix epoch seconds with fractional precision.
func Epoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromEpoch converts unix epoch seconds to a UTC time.
func FromEpoch(seconds float64) time.Time {
	sec := int64(seconds)
	nanos := int64((seconds - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nanos).UTC()
}
