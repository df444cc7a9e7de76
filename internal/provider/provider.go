package provider

import (
	"context"
	"fmt"

	"hospitalityhub/internal/config"
	"hospitalityhub/internal/domain"
	"hospitalityhub/internal/provider/airtable"
	"hospitalityhub/internal/provider/mews"
)

// Store is the capability surface every PMS backend must implement. Lookup
// methods return (nil, nil) when the entity simply does not exist; errors are
// reserved for backend failures.
//
// One implementation is chosen at process start, there is no runtime
// switching.
type Store interface {
	// Rooms
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error)
	CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Room, error)

	// Bookings
	CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ActiveBookingForRoom(ctx context.Context, roomNumber string) (*domain.Booking, error)
	SearchActiveBookings(ctx context.Context, q domain.BookingSearch) ([]domain.Booking, error)

	// Menu and room service
	GetMenu(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
}

func New(cfg *config.Config) (Store, error) {
	switch cfg.Provider {
	case config.ProviderAirtable:
		return airtable.New(cfg.Airtable), nil
	case config.ProviderMews:
		return mews.New(cfg.Mews), nil
	default:
		return nil, fmt.Errorf("unsupported PMS provider %q", cfg.Provider)
	}
}
