package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Dates are kept as text the way the trainer writes them: "DD/MM" for
// progress logs recorded at runtime and "DD/MM/YYYY" everywhere else.
const (
	shortDateLayout = "02/01"
	longDateLayout  = "02/01/2006"
)

var ErrInvalidDate = errors.New("invalid date, expected DD/MM/YYYY")

// ShortDate formats t as "DD/MM".
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// LongDate formats t as "DD/MM/YYYY".
func LongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// ParseLongDate parses "D/M/YYYY" with or without zero padding.
// The result is a midnight time in loc.
func ParseLongDate(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return time.Time{}, ErrInvalidDate
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month > 12 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// AddMonth advances t by one calendar month. Days the target month lacks
// overflow into the following month (31/01 -> 03/03), as plain date arithmetic does.
func AddMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

// NextDueDate returns the next occurrence of day-of-month payDay counting from
// now: this month when the day has not passed yet, next month otherwise.
func NextDueDate(now time.Time, payDay int) time.Time {
	y, m, _ := now.Date()
	due := time.Date(y, m, payDay, 0, 0, 0, 0, now.Location())
	today := time.Date(y, m, now.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		due = time.Date(y, m+1, payDay, 0, 0, 0, 0, now.Location())
	}
	return due
}
