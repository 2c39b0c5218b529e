// Package valueobject contains domain value objects for the Cashflow Tracker system.
package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// MonthKeyLayout is the canonical month key layout ("YYYY-MM").
//
// Month keys sort lexicographically in chronological order; every comparison
// in the system relies on this, so the month component must stay zero-padded.
const MonthKeyLayout = "2006-01"

// MonthKeyForDate returns the canonical month key for a calendar date, using
// the date's own year and month (no UTC normalization).
func MonthKeyForDate(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// ParseMonthKey parses a canonical "YYYY-MM" month key.
func ParseMonthKey(key string) (time.Time, error) {
	parsed, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, domainerror.NewMonthError(
			domainerror.ErrCodeInvalidMonthKey,
			fmt.Sprintf("month key %q is not in YYYY-MM format", key),
			domainerror.ErrInvalidMonthKey,
		)
	}
	return parsed, nil
}

// MonthRange returns exactly count consecutive month keys beginning at start.
// It advances by whole calendar months from the first of the month, so
// day-of-month drift can never skip or repeat a month.
func MonthRange(start string, count int) ([]string, error) {
	if count < 1 {
		return nil, domainerror.NewMonthError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("month count must be at least 1, got %d", count),
			domainerror.ErrInvalidMonthCount,
		)
	}

	first, err := ParseMonthKey(start)
	if err != nil {
		return nil, err
	}

	keys := make([]string, count)
	current := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		keys[i] = current.Format(MonthKeyLayout)
		current = current.AddDate(0, 1, 0)
	}
	return keys, nil
}

// NextMonthKey returns the month key immediately following key.
func NextMonthKey(key string) (string, error) {
	parsed, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 1, 0).Format(MonthKeyLayout), nil
}

// MonthDisplayName returns the human-readable label for a month key,
// e.g. "2025-01" -> "Jan 2025".
func MonthDisplayName(key string) (string, error) {
	parsed, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return parsed.Format("Jan 2006"), nil
}
