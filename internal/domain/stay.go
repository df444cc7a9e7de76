package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date into UTC midnight.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		// beside plain dates the PMS backends occasionally hand back full
		// timestamps, accept those too
		t, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Nights is the chargeable night count: ceil((checkOut - checkIn) / 24h).
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Overlaps applies the half-open interval rule to two stays: [aStart, aEnd)
// and [bStart, bEnd) conflict unless one ends exactly when the other begins,
// so same-day turnover never counts as a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !aStart.Before(bEnd))
}
