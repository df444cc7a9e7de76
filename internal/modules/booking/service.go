package booking

import (
	"context"

	"hospitalityhub/internal/domain"
	"hospitalityhub/internal/pkg/validator"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create books a room for the requested stay. Total price is nights times the
// room's nightly rate; new bookings always start out confirmed.
//
// No overlap check happens here: callers are expected to have consulted
// availability first, and the backend is the only arbiter of concurrent
// writes.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, firstFieldError(errs)
	}

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
	if req.Guests <= 0 {
		return nil, domain.Invalid("guests", "must be a positive number")
	}

	room, err := s.resolveRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.NotFound("Room", "")
	}

	nights := domain.Nights(checkIn, checkOut)

	return s.store.CreateBooking(ctx, domain.Booking{
		RoomID:          room.ID,
		RoomNumber:      room.Number,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		TotalPrice:      room.Price * float64(nights),
		Status:          domain.BookingConfirmed,
		SpecialRequests: req.SpecialRequests,
	})
}

// Update patches only the supplied fields. Whenever the stay dates or the
// room reference change, the total price is recomputed from the resolved
// room's current nightly rate.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*domain.Booking, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, firstFieldError(errs)
	}

	current, err := s.store.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NotFound("Booking", req.BookingID)
	}

	patch := domain.BookingPatch{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			return nil, domain.Invalid("status", "unknown booking status "+*req.Status)
		}
		patch.Status = &status
	}

	checkIn := current.CheckIn
	checkOut := current.CheckOut
	if req.CheckIn != nil {
		checkIn, err = domain.ParseDate(*req.CheckIn)
		if err != nil {
			return nil, domain.Invalid("checkIn", err.Error())
		}
		patch.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, err = domain.ParseDate(*req.CheckOut)
		if err != nil {
			return nil, domain.Invalid("checkOut", err.Error())
		}
		patch.CheckOut = &checkOut
	}
	if !checkOut.After(checkIn) {
		return nil, domain.Invalid("checkOut", "must be after checkIn")
	}

	roomRef := current.RoomID
	if req.RoomID != nil {
		roomRef = *req.RoomID
	}

	if req.RoomID != nil || req.CheckIn != nil || req.CheckOut != nil {
		room, err := s.resolveRoom(ctx, roomRef)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, domain.NotFound("Room", roomRef)
		}
		if req.RoomID != nil {
			patch.RoomID = &room.ID
			patch.RoomNumber = &room.Number
		}

		total := room.Price * float64(domain.Nights(checkIn, checkOut))
		patch.TotalPrice = &total
	}

	return s.store.UpdateBooking(ctx, req.BookingID, patch)
}

// ActiveForRoom returns the single active booking occupying a room, or nil.
// Duplicate active bookings are a backend data-integrity condition; the first
// match wins.
func (s *Service) ActiveForRoom(ctx context.Context, roomNumber string) (*domain.Booking, error) {
	return s.store.ActiveBookingForRoom(ctx, roomNumber)
}

// Search finds active bookings matching every supplied criterion. A booking
// id short-circuits all other criteria and does a direct lookup.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.Booking, error) {
	q := domain.BookingSearch{
		RoomNumber: req.RoomNumber,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		BookingID:  req.BookingID,
	}
	if q.Empty() {
		return nil, domain.Invalid("", "At least one search parameter must be provided")
	}

	if q.BookingID != "" {
		b, err := s.store.GetBooking(ctx, q.BookingID)
		if err != nil {
			return nil, err
		}
		if b == nil || !b.Status.Active() {
			return []domain.Booking{}, nil
		}
		return []domain.Booking{*b}, nil
	}

	return s.store.SearchActiveBookings(ctx, q)
}

// resolveRoom accepts either a human room number or the backend's opaque
// identifier; the number is tried first and the opaque id is used internally
// from then on.
func (s *Service) resolveRoom(ctx context.Context, ref string) (*domain.Room, error) {
	room, err := s.store.GetRoomByNumber(ctx, ref)
	if err != nil {
		return nil, err
	}
	if room != nil {
		return room, nil
	}
	return s.store.GetRoom(ctx, ref)
}

func firstFieldError(errs map[string]string) error {
	for field, tag := range errs {
		return domain.Invalid(field, "failed "+tag+" validation")
	}
	return nil
}
