package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for dates and week keys.
const DateLayout = "2006-01-02"

// Weekday is a lowercase weekday name, the key space of a WeeklySchedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven day keys in week order, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a weekday name coming from a request path.
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf maps a calendar date to its weekly-schedule key.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// WeekStart returns the Monday (UTC midnight) of the ISO week containing t.
// Its DateLayout rendering is the storage key for the week's schedule.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// WeekKey formats the Monday of t's week as a storage key.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want yyyy-MM-dd", s)
	}
	return t, nil
}
