package rooms

import (
	"context"

	"hospitalityhub/internal/domain"
)

// Store is the slice of the PMS capability surface this module needs.
type Store interface {
	GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error)
	CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Room, error)
}
