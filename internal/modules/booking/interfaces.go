package booking

import (
	"context"

	"hospitalityhub/internal/domain"
)

// Store is the slice of the PMS capability surface this module needs.
type Store interface {
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error)

	CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ActiveBookingForRoom(ctx context.Context, roomNumber string) (*domain.Booking, error)
	SearchActiveBookings(ctx context.Context, q domain.BookingSearch) ([]domain.Booking, error)
}
