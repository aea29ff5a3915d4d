// Package isoweek implements ISO-8601 week arithmetic over week labels of
// the form "2025-W33": Monday-start weeks, week 1 is the week holding the
// year's first Thursday.
package isoweek

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidWeekLabel = errors.New("invalid week label")

// WeekOf returns the ISO week label of a date. The date is normalized to
// UTC midnight; the label year is the year of the Thursday of the date's
// week.
func WeekOf(date time.Time) string {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	thursday := d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(thursday.Sub(yearStart).Hours() / 24)
	week := (days + 1 + 6) / 7
	return fmt.Sprintf("%d-W%02d", thursday.Year(), week)
}

// Parse splits a "YYYY-Www" label into year and week number.
func Parse(label string) (int, int, error) {
	parts := strings.SplitN(label, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, ErrInvalidWeekLabel
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidWeekLabel
	}
	week, err := strconv.Atoi(parts[1])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, ErrInvalidWeekLabel
	}
	return year, week, nil
}

// Format renders a year/week pair as a week label.
func Format(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MondayOf returns the Monday of a week. Jan 4 is always inside week 1, so
// week 1's Monday anchors the rest of the year.
func MondayOf(label string) (time.Time, error) {
	year, week, err := Parse(label)
	if err != nil {
		return time.Time{}, err
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7), nil
}

// FridayOf returns the Friday of a week as yyyy-mm-dd.
func FridayOf(label string) (string, error) {
	monday, err := MondayOf(label)
	if err != nil {
		return "", err
	}
	return monday.AddDate(0, 0, 4).Format("2006-01-02"), nil
}

// Shift moves a label by delta weeks, normalizing across year boundaries.
func Shift(label string, delta int) (string, error) {
	year, week, err := Parse(label)
	if err != nil {
		return "", err
	}
	week += delta
	for week < 1 {
		year--
		week += WeeksInYear(year)
	}
	for week > WeeksInYear(year) {
		week -= WeeksInYear(year)
		year++
	}
	return Format(year, week), nil
}

// WeeksInYear reports 52 or 53. Dec 28 is always inside the year's last ISO
// week (Dec 29-31 can already belong to week 1 of the next year).
func WeeksInYear(year int) int {
	label := WeekOf(time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC))
	_, week, _ := Parse(label)
	return week
}
