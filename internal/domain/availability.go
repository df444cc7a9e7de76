package domain

import (
	"strings"
	"time"
)

// BookedRoomIDs collects the room references of active bookings whose stay
// overlaps [checkIn, checkOut). Cancelled and checked-out bookings never
// block a room.
func BookedRoomIDs(bookings []Booking, checkIn, checkOut time.Time) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		if Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			booked[b.RoomID] = struct{}{}
		}
	}
	return booked
}

// FilterBookableRooms keeps rooms that are in "available" status and not in
// the booked set, optionally narrowed to an exact room type (case-insensitive).
//
// Guest capacity is deliberately not filtered: callers may combine several
// rooms to host a party larger than any single room.
func FilterBookableRooms(rooms []Room, booked map[string]struct{}, roomType string) []Room {
	out := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Status != RoomAvailable {
			continue
		}
		if _, taken := booked[r.ID]; taken {
			continue
		}
		if roomType != "" && !strings.EqualFold(r.Type, roomType) {
			continue
		}
		out = append(out, r)
	}
	return out
}
