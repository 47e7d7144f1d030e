package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "02/01/2006"
	shortDateLayout = "02/01/06"
	filterLayout    = "2006-01-02"
)

// FormatDate renders t the way the UI shows dates, DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseCheckDate accepts check dates as DD/MM/YYYY or DD/MM/YY.
func ParseCheckDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(shortDateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseFilterDate parses the ISO date used by filter query params.
func ParseFilterDate(s string) (time.Time, error) {
	return time.Parse(filterLayout, s)
}

// EndOfDay pushes t to the last representable millisecond of its day, so an
// inclusive date-range end covers the whole day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatNumber renders a number without padding: 10 stays "10", 12.5 stays
// "12.5".
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}
