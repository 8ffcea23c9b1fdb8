package utils

import (
	"time"

	"salonledger-backend/models"
)

// DayRange returns the half-open UTC instant range [start, end) covering
// one calendar day in loc. Midnight is taken from the wall clock in loc,
// so the range is correct across DST transitions where the zone has them.
func DayRange(loc *time.Location, d models.Date) (time.Time, time.Time) {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) models.Date {
	return models.DateOf(time.Now().In(loc))
}

// MonthRange covers one calendar month in loc, half-open.
func MonthRange(loc *time.Location, year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return start.UTC(), end.UTC()
}

// YearRange covers one calendar year in loc, half-open.
func YearRange(loc *time.Location, year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)
	return start.UTC(), end.UTC()
}

// DaysInMonth handles leap years through time.Date normalization:
// day 0 of the next month is the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// ParseYear parses "YYYY".
func ParseYear(s string) (int, error) {
	t, err := time.Parse("2006", s)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}
