package mews

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospitalityhub/internal/domain"
)

func TestMatchesSearch_GuestNameIsCaseInsensitiveSubstring(t *testing.T) {
	b := domain.Booking{GuestName: "Jane Doe"}

	assert.True(t, matchesSearch(b, domain.BookingSearch{GuestName: "jane"}))
	assert.True(t, matchesSearch(b, domain.BookingSearch{GuestName: "DOE"}))
	assert.False(t, matchesSearch(b, domain.BookingSearch{GuestName: "john"}))
}

func TestMatchesSearch_GuestEmailIsCaseInsensitiveSubstring(t *testing.T) {
	b := domain.Booking{GuestEmail: "Jane@Example.com"}

	assert.True(t, matchesSearch(b, domain.BookingSearch{GuestEmail: "jane@example"}))
	assert.False(t, matchesSearch(b, domain.BookingSearch{GuestEmail: "john@"}))
}

func TestMatchesSearch_PhoneIsCaseSensitiveSubstring(t *testing.T) {
	b := domain.Booking{GuestPhone: "+44 1234 567890"}

	assert.True(t, matchesSearch(b, domain.BookingSearch{GuestPhone: "1234"}))
	assert.False(t, matchesSearch(b, domain.BookingSearch{GuestPhone: "9999"}))
}

func TestMatchesSearch_CriteriaAreANDed(t *testing.T) {
	b := domain.Booking{GuestName: "Jane Doe", GuestEmail: "jane@example.com"}

	assert.True(t, matchesSearch(b, domain.BookingSearch{
		GuestName:  "jane",
		GuestEmail: "example.com",
	}))
	assert.False(t, matchesSearch(b, domain.BookingSearch{
		GuestName:  "jane",
		GuestEmail: "other.org",
	}))
}

func TestMatchesSearch_EmptyCriteriaMatchEverything(t *testing.T) {
	assert.True(t, matchesSearch(domain.Booking{GuestName: "Jane Doe"}, domain.BookingSearch{}))
}
