package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Active reports whether the booking occupies its room going forward.
// Only confirmed and checked-in bookings block availability.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

func ParseBookingStatus(v string) (BookingStatus, bool) {
	switch BookingStatus(v) {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return BookingStatus(v), true
	}
	return "", false
}

type Booking struct {
	ID              string        `json:"id"`
	RoomID          string        `json:"roomId"`
	RoomNumber      string        `json:"roomNumber,omitempty"`
	GuestName       string        `json:"guestName"`
	GuestEmail      string        `json:"guestEmail,omitempty"`
	GuestPhone      string        `json:"guestPhone,omitempty"`
	CheckIn         time.Time     `json:"checkIn"`
	CheckOut        time.Time     `json:"checkOut"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
}

// BookingPatch is a sparse update: nil means "leave the field untouched",
// never "clear it".
type BookingPatch struct {
	RoomID          *string
	RoomNumber      *string
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	CheckIn         *time.Time
	CheckOut        *time.Time
	Guests          *int
	TotalPrice      *float64
	Status          *BookingStatus
	SpecialRequests *string
}

// BookingSearch combines lookup criteria with logical AND. A non-empty
// BookingID short-circuits every other criterion.
type BookingSearch struct {
	RoomNumber string
	GuestName  string
	GuestEmail string
	GuestPhone string
	BookingID  string
}

func (q BookingSearch) Empty() bool {
	return q.RoomNumber == "" && q.GuestName == "" && q.GuestEmail == "" &&
		q.GuestPhone == "" && q.BookingID == ""
}
