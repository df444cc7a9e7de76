package rooms

type AvailabilityRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests" binding:"omitempty,gt=0"`
	RoomType string `json:"roomType"`
}

type RoomInfoRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
}
