// Package timeclock provides wall-clock time-of-day values and the duration
// arithmetic the timetable feed needs. No timezone awareness: every value is
// anchored to a fixed reference date.
package timeclock

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	feedLayout  = "02/01/2006"
	dateLayout  = "2006-01-02"

	minutesPerDay = 24 * 60
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an HH:MM string.
func ParseClock(raw string) (Clock, error) {
	t, err := time.Parse(clockLayout, raw)
	if err != nil {
		return Clock{}, fmt.Errorf("parse clock %q: %w", raw, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Add returns the clock advanced by the given number of minutes, wrapping at
// the day boundary. Overnight spans are not modeled; the result is always a
// same-day time of day.
func (c Clock) Add(minutes int) Clock {
	total := (c.Hour*60 + c.Minute + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return Clock{Hour: total / 60, Minute: total % 60}
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.Hour*60+c.Minute < other.Hour*60+other.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON renders the clock as "HH:MM".
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "HH:MM".
func (c *Clock) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseFeedDate parses the timetable feed's DD/MM/YYYY format.
func ParseFeedDate(raw string) (Date, error) {
	t, err := time.Parse(feedLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON renders the date as ISO "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts ISO "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", raw, err)
	}
	*d = Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}
