package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Room is read-only from this system's perspective: rooms are created and
// maintained in the backend PMS, we only fetch and filter them.
type Room struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	Type      string     `json:"type"`
	Price     float64    `json:"price"`
	Capacity  int        `json:"capacity"`
	Amenities []string   `json:"amenities"`
	Status    RoomStatus `json:"status"`
}

// AvailabilityQuery describes a stay interval plus optional filters.
// Dates are calendar dates at UTC midnight.
type AvailabilityQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	RoomType string
}
