package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookedRoomIDs_OverlappingActiveBooking(t *testing.T) {
	bookings := []Booking{
		{RoomID: "r1", Status: BookingConfirmed, CheckIn: date(2024, 12, 10), CheckOut: date(2024, 12, 15)},
		{RoomID: "r2", Status: BookingCheckedIn, CheckIn: date(2024, 12, 12), CheckOut: date(2024, 12, 20)},
	}

	booked := BookedRoomIDs(bookings, date(2024, 12, 14), date(2024, 12, 16))
	assert.Contains(t, booked, "r1")
	assert.Contains(t, booked, "r2")
}

func TestBookedRoomIDs_SameDayTurnoverDoesNotBlock(t *testing.T) {
	bookings := []Booking{
		{RoomID: "r1", Status: BookingConfirmed, CheckIn: date(2024, 12, 10), CheckOut: date(2024, 12, 15)},
	}

	// New stay starts exactly on the existing checkout day.
	booked := BookedRoomIDs(bookings, date(2024, 12, 15), date(2024, 12, 18))
	assert.Empty(t, booked)
}

func TestBookedRoomIDs_InactiveStatusesNeverBlock(t *testing.T) {
	bookings := []Booking{
		{RoomID: "r1", Status: BookingCancelled, CheckIn: date(2024, 12, 10), CheckOut: date(2024, 12, 15)},
		{RoomID: "r2", Status: BookingCheckedOut, CheckIn: date(2024, 12, 10), CheckOut: date(2024, 12, 15)},
	}

	booked := BookedRoomIDs(bookings, date(2024, 12, 11), date(2024, 12, 13))
	assert.Empty(t, booked)
}

func TestFilterBookableRooms_ExcludesBookedAndUnavailable(t *testing.T) {
	rooms := []Room{
		{ID: "r1", Number: "101", Status: RoomAvailable},
		{ID: "r2", Number: "102", Status: RoomAvailable},
		{ID: "r3", Number: "103", Status: RoomMaintenance},
		{ID: "r4", Number: "104", Status: RoomOccupied},
	}
	booked := map[string]struct{}{"r2": {}}

	out := FilterBookableRooms(rooms, booked, "")
	assert.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
}

func TestFilterBookableRooms_RoomTypeIsCaseInsensitive(t *testing.T) {
	rooms := []Room{
		{ID: "r1", Type: "Deluxe", Status: RoomAvailable},
		{ID: "r2", Type: "standard", Status: RoomAvailable},
	}

	out := FilterBookableRooms(rooms, nil, "deluxe")
	assert.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
}

func TestFilterBookableRooms_CapacityNotFiltered(t *testing.T) {
	rooms := []Room{
		{ID: "r1", Capacity: 1, Status: RoomAvailable},
	}

	// Callers can book several small rooms for a large party, so a
	// one-person room stays bookable regardless of the party size.
	out := FilterBookableRooms(rooms, nil, "")
	assert.Len(t, out, 1)
}
