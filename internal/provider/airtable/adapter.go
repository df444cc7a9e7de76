package airtable

import (
	"context"

	"hospitalityhub/internal/config"
	"hospitalityhub/internal/domain"
)

// Adapter backs the PMS capability surface with a hosted table store. Exact
// filters are pushed into the backend formula language; interval overlap and
// dietary filtering happen in memory because the formula language cannot
// express them robustly.
type Adapter struct {
	client *Client
	tables config.AirtableTables
}

func New(cfg config.Airtable) *Adapter {
	return &Adapter{
		client: NewClient(cfg.APIKey, cfg.BaseID),
		tables: cfg.Tables,
	}
}

func (a *Adapter) ListRooms(ctx context.Context) ([]domain.Room, error) {
	records, err := a.client.List(ctx, a.tables.Rooms, ListOptions{})
	if err != nil {
		return nil, domain.Backend("list rooms", err)
	}
	rooms := make([]domain.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, recordToRoom(rec))
	}
	return rooms, nil
}

func (a *Adapter) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	rec, err := a.client.Find(ctx, a.tables.Rooms, id)
	if err != nil {
		return nil, domain.Backend("get room", err)
	}
	if rec == nil {
		return nil, nil
	}
	room := recordToRoom(*rec)
	return &room, nil
}

func (a *Adapter) GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	records, err := a.client.List(ctx, a.tables.Rooms, ListOptions{
		FilterByFormula: eq(fieldNumber, number),
		MaxRecords:      1,
	})
	if err != nil {
		return nil, domain.Backend("get room by number", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	room := recordToRoom(records[0])
	return &room, nil
}

func (a *Adapter) CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Room, error) {
	rooms, err := a.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := a.listActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	booked := domain.BookedRoomIDs(bookings, q.CheckIn, q.CheckOut)
	return domain.FilterBookableRooms(rooms, booked, q.RoomType), nil
}

func (a *Adapter) listActiveBookings(ctx context.Context) ([]domain.Booking, error) {
	records, err := a.client.List(ctx, a.tables.Bookings, ListOptions{
		FilterByFormula: activeBookings(),
	})
	if err != nil {
		return nil, domain.Backend("list active bookings", err)
	}
	bookings := make([]domain.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, recordToBooking(rec))
	}
	return bookings, nil
}

func (a *Adapter) CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	rec, err := a.client.Create(ctx, a.tables.Bookings, bookingFields(b))
	if err != nil {
		return nil, domain.Backend("create booking", err)
	}
	created := recordToBooking(*rec)
	return &created, nil
}

func (a *Adapter) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	rec, err := a.client.Update(ctx, a.tables.Bookings, id, bookingPatchFields(patch))
	if err != nil {
		return nil, domain.Backend("update booking", err)
	}
	updated := recordToBooking(*rec)
	return &updated, nil
}

func (a *Adapter) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	rec, err := a.client.Find(ctx, a.tables.Bookings, id)
	if err != nil {
		return nil, domain.Backend("get booking", err)
	}
	if rec == nil {
		return nil, nil
	}
	b := recordToBooking(*rec)
	return &b, nil
}

func (a *Adapter) ActiveBookingForRoom(ctx context.Context, roomNumber string) (*domain.Booking, error) {
	room, err := a.GetRoomByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}

	records, err := a.client.List(ctx, a.tables.Bookings, ListOptions{
		FilterByFormula: and(eq(fieldRoomID, room.ID), activeBookings()),
		MaxRecords:      1,
	})
	if err != nil {
		return nil, domain.Backend("get active booking for room", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	b := recordToBooking(records[0])
	return &b, nil
}

func (a *Adapter) SearchActiveBookings(ctx context.Context, q domain.BookingSearch) ([]domain.Booking, error) {
	conditions := []string{activeBookings()}

	if q.RoomNumber != "" {
		room, err := a.GetRoomByNumber(ctx, q.RoomNumber)
		if err != nil {
			return nil, err
		}
		if room != nil {
			// legacy rows sometimes carry the human room number in the
			// RoomId column, so match either reference
			conditions = append(conditions, or(eq(fieldRoomID, room.ID), eq(fieldRoomNumber, q.RoomNumber)))
		} else {
			conditions = append(conditions, eq(fieldRoomNumber, q.RoomNumber))
		}
	}
	if q.GuestName != "" {
		conditions = append(conditions, contains(fieldGuestName, q.GuestName))
	}
	if q.GuestEmail != "" {
		conditions = append(conditions, contains(fieldGuestEmail, q.GuestEmail))
	}
	if q.GuestPhone != "" {
		conditions = append(conditions, containsExact(fieldGuestPhone, q.GuestPhone))
	}

	records, err := a.client.List(ctx, a.tables.Bookings, ListOptions{
		FilterByFormula: and(conditions...),
	})
	if err != nil {
		return nil, domain.Backend("search active bookings", err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, recordToBooking(rec))
	}
	return bookings, nil
}

func (a *Adapter) GetMenu(ctx context.Context, category string) ([]domain.MenuItem, error) {
	opts := ListOptions{}
	if category != "" {
		opts.FilterByFormula = eqFold(fieldCategory, category)
	}
	records, err := a.client.List(ctx, a.tables.Menu, opts)
	if err != nil {
		return nil, domain.Backend("get menu", err)
	}
	items := make([]domain.MenuItem, 0, len(records))
	for _, rec := range records {
		items = append(items, recordToMenuItem(rec))
	}
	return items, nil
}

func (a *Adapter) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	rec, err := a.client.Find(ctx, a.tables.Menu, id)
	if err != nil {
		return nil, domain.Backend("get menu item", err)
	}
	if rec == nil {
		return nil, nil
	}
	item := recordToMenuItem(*rec)
	return &item, nil
}

func (a *Adapter) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	rec, err := a.client.Create(ctx, a.tables.RoomService, orderFields(o))
	if err != nil {
		return nil, domain.Backend("create room service order", err)
	}
	created := recordToOrder(*rec)
	return &created, nil
}
