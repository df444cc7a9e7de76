package rooms

import (
	"context"

	"hospitalityhub/internal/domain"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CheckAvailability validates the requested stay and returns every bookable
// room for it. Reads have no side effects and may be repeated freely.
func (s *Service) CheckAvailability(ctx context.Context, req AvailabilityRequest) ([]domain.Room, error) {
	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		return nil, domain.Invalid("checkIn", err.Error())
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		return nil, domain.Invalid("checkOut", err.Error())
	}
	if !checkOut.After(checkIn) {
		return nil, domain.Invalid("checkOut", "must be after checkIn")
	}

	return s.store.CheckAvailability(ctx, domain.AvailabilityQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		RoomType: req.RoomType,
	})
}

func (s *Service) RoomInfo(ctx context.Context, roomNumber string) (*domain.Room, error) {
	room, err := s.store.GetRoomByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.NotFound("Room", "")
	}
	return room, nil
}
