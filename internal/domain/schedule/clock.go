package schedule

import (
	"fmt"
	"time"
)

const (
	DateKeyLayout = "01-02-2006"
	ClockLayout   = "15:04:05"
	DisplayLayout = "03:04 PM"
)

// ParseDateKey reads a "MM-DD-YYYY" key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, loc)
}

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseClock reads a wall-clock "HH:MM:SS" (or "HH:MM") and returns the
// offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// At places a wall-clock string on date's calendar day.
func At(date time.Time, clock string) (time.Time, error) {
	off, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(off), nil
}

// FormatClock12 renders "14:30:00" as "02:30 PM". Unparseable input is
// returned as is.
func FormatClock12(clock string) string {
	off, err := ParseClock(clock)
	if err != nil {
		return clock
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(off).Format(DisplayLayout)
}

// Minutes returns the minutes since midnight of a wall-clock string.
func Minutes(clock string) (int, error) {
	off, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return int(off / time.Minute), nil
}
