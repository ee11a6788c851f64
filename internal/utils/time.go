package utils

import (
	"fmt"
	"time"
)

const layoutDate = "2006-01-02"

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// EncodeDateCode converts a date to the legacy YYYYMMDD integer form used
// in Client_Trip.RegisteredAt / PaymentDate (e.g. 20240315).
func EncodeDateCode(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DecodeDateCode converts a YYYYMMDD integer back to a date. The code must
// denote a real calendar date, otherwise an error is returned.
func DecodeDateCode(code int) (time.Time, error) {
	if code < 10000101 || code > 99991231 {
		return time.Time{}, fmt.Errorf("date code %d out of range", code)
	}
	year := code / 10000
	month := (code / 100) % 100
	day := code % 100
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("date code %d is not a valid date", code)
	}
	return t, nil
}
