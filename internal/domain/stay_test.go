package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_PlainDate(t *testing.T) {
	d, err := ParseDate("2024-12-10")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDate_Timestamp(t *testing.T) {
	d, err := ParseDate("2024-12-10T15:04:05Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 10, 15, 4, 5, 0, time.UTC), d)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestNights_WholeDays(t *testing.T) {
	in := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(in, out))
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	in := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(in, out))

	out = time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(in, out))
}

func TestOverlaps_SameDayTurnover(t *testing.T) {
	aStart := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	aEnd := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	bStart := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	bEnd := time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC)

	// Checkout day equals check-in day: no overlap in either direction.
	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
	assert.False(t, Overlaps(bStart, bEnd, aStart, aEnd))
}

func TestOverlaps_Partial(t *testing.T) {
	aStart := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	aEnd := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	bStart := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)
	bEnd := time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC)

	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
}

func TestOverlaps_Contained(t *testing.T) {
	aStart := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	aEnd := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	bStart := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	bEnd := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)

	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
}
