package booking

type CreateRequest struct {
	RoomID          string `json:"roomId" binding:"required"`
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone      string `json:"guestPhone"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gt=0"`
	SpecialRequests string `json:"specialRequests"`
}

// UpdateRequest is a sparse patch: nil fields are left untouched, never
// cleared.
type UpdateRequest struct {
	BookingID       string  `json:"bookingId" binding:"required"`
	RoomID          *string `json:"roomId"`
	GuestName       *string `json:"guestName"`
	GuestEmail      *string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone      *string `json:"guestPhone"`
	CheckIn         *string `json:"checkIn"`
	CheckOut        *string `json:"checkOut"`
	Guests          *int    `json:"guests" validate:"omitempty,gt=0"`
	Status          *string `json:"status"`
	SpecialRequests *string `json:"specialRequests"`
}

type SearchRequest struct {
	RoomNumber string `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
	BookingID  string `json:"bookingId"`
}
