package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date format used on the wire.
	DateLayout = "2006-01-02"
	// DisplayLayout is the human-readable form used in messages.
	DisplayLayout = "Jan 2, 2006"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateDifference represents the difference between two dates
type DateDifference struct {
	Months int
	Days   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day must be between 1 and %d", DaysInMonth(year, month))
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Today formats the calendar date of now as yyyy-mm-dd
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// String formats the date as yyyy-mm-dd
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// UTC returns midnight UTC of the date. Calendar arithmetic is done in UTC
// so daylight-saving shifts never produce 23 or 25 hour days.
func (d Date) UTC() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days later
func (d Date) AddDays(n int) Date {
	return DateOf(d.UTC().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.UTC().Before(other.UTC())
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.UTC().After(other.UTC())
}

// Display formats the date for people, e.g. "Jan 2, 2006"
func (d Date) Display() string {
	return d.UTC().Format(DisplayLayout)
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// CeilDays rounds a duration up to whole days
func CeilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}

// DaysBetween returns the whole calendar days from start to end (negative when end is earlier)
func DaysBetween(start, end Date) int {
	return CeilDays(end.UTC().Sub(start.UTC()))
}

// CalculateDateDifference computes whole months plus remaining days from
// startDate to endDate, end exclusive
func CalculateDateDifference(startDate, endDate Date) (DateDifference, error) {
	if endDate.Before(startDate) {
		return DateDifference{}, fmt.Errorf("end date must be >= start date")
	}

	years := endDate.Year - startDate.Year
	months := endDate.Month - startDate.Month
	days := endDate.Day - startDate.Day

	// If days < 0, borrow from months
	if days < 0 {
		months -= 1
		prevMonth := endDate.Month - 1
		prevYear := endDate.Year
		if prevMonth < 1 {
			prevMonth = 12
			prevYear -= 1
		}
		days += DaysInMonth(prevYear, prevMonth)
	}

	// If months are negative, borrow from years
	if months < 0 {
		years -= 1
		months += 12
	}

	months += 12 * years

	return DateDifference{Months: months, Days: days}, nil
}
