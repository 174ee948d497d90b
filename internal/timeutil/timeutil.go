// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// keyLayout is RFC3339 with a fixed-width fraction so that keys sort in
// chronological order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds. Minutes
// are not wrapped into hours.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		return 0, 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// MMSS formats seconds as "MM:SS". Both components are zero-padded to two
// digits and minutes may exceed 59 (7500 is "125:00").
func MMSS(seconds int) string {
	m, s := SecsToMinsAndSecs(seconds)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// HumanDuration renders seconds as "1m 30s", "1m" or "45s".
func HumanDuration(seconds int) string {
	m, s := SecsToMinsAndSecs(seconds)

	if m > 0 {
		if s > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}

		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%ds", s)
}

// FromStr parses absolute ("2024-03-01 07:00") or relative ("2 days ago")
// date strings.
func FromStr(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, errEmptyDate
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dateparser.Parse(cfg, str)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(str).Wrap(err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
