package task

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the canonical date layout.
const DateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^([0-9]{4})-(0?[1-9]|1[0-2])-(0?[1-9]|[12][0-9]|3[01])$`)

// NormalizeDate validates a YYYY-M-D date and returns it as YYYY-MM-DD.
//
// Days up to 28 are accepted for every month. Larger days must exist in the
// given month and year; they are rejected, not carried into the next month.
func NormalizeDate(raw string) (string, error) {
	m := dateRegex.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrInvalidDate
	}
	year, month, day := m[1], pad2(m[2]), pad2(m[3])
	date := year + "-" + month + "-" + day

	if d, _ := strconv.Atoi(day); d > 28 {
		if _, err := time.Parse(time.RFC3339, date+"T00:00:00Z"); err != nil {
			return "", ErrInvalidDate
		}
	}
	return date, nil
}

// ParseDate parses a canonical date as midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DaysBetween returns the number of whole calendar days from the UTC date of
// from to the canonical date to. It is negative when to lies in the past.
func DaysBetween(from time.Time, to string) (int, error) {
	target, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	y, m, d := from.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((target.Unix() - start.Unix()) / secondsPerDay), nil
}

const secondsPerDay = 24 * 60 * 60

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
