package mews

import (
	"context"
	"strings"
	"time"

	"hospitalityhub/internal/config"
	"hospitalityhub/internal/domain"
)

// Adapter backs the PMS capability surface with the hotel connector API.
// Guest identity requires a separate customer lookup-or-create step before a
// reservation can be created.
type Adapter struct {
	client    *Client
	serviceID string
}

func New(cfg config.Mews) *Adapter {
	return &Adapter{
		client:    NewClient(cfg.APIURL, cfg.AccessToken, cfg.ClientToken),
		serviceID: cfg.ServiceID,
	}
}

func (a *Adapter) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var resp struct {
		Resources []resource `json:"Resources"`
	}
	err := a.client.post(ctx, "/api/connector/v1/resources/getAll", map[string]any{
		"ServiceIds": []string{a.serviceID},
	}, &resp)
	if err != nil {
		return nil, domain.Backend("list rooms", err)
	}

	rooms := make([]domain.Room, 0, len(resp.Resources))
	for _, r := range resp.Resources {
		rooms = append(rooms, resourceToRoom(r))
	}
	return rooms, nil
}

func (a *Adapter) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	rooms, err := a.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, nil
}

func (a *Adapter) GetRoomByNumber(ctx context.Context, number string) (*domain.Room, error) {
	rooms, err := a.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].Number == number {
			return &rooms[i], nil
		}
	}
	return nil, nil
}

func (a *Adapter) CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Room, error) {
	var resp struct {
		ResourceAvailabilities []resourceAvailability `json:"ResourceAvailabilities"`
	}
	err := a.client.post(ctx, "/api/connector/v1/resources/getAllAvailability", map[string]any{
		"ServiceId": a.serviceID,
		"StartUtc":  q.CheckIn.UTC().Format(time.RFC3339),
		"EndUtc":    q.CheckOut.UTC().Format(time.RFC3339),
	}, &resp)
	if err != nil {
		return nil, domain.Backend("check availability", err)
	}

	open := make(map[string]struct{}, len(resp.ResourceAvailabilities))
	for _, ra := range resp.ResourceAvailabilities {
		if ra.AvailableCount > 0 {
			open[ra.ResourceID] = struct{}{}
		}
	}

	rooms, err := a.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	// feed the shared filter the complement: rooms the API did not report as
	// open count as booked for the requested interval
	booked := make(map[string]struct{})
	for _, r := range rooms {
		if _, ok := open[r.ID]; !ok {
			booked[r.ID] = struct{}{}
		}
	}
	return domain.FilterBookableRooms(rooms, booked, q.RoomType), nil
}

func (a *Adapter) CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	cust, err := a.lookupOrCreateCustomer(ctx, b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Reservations []reservation `json:"Reservations"`
	}
	err = a.client.post(ctx, "/api/connector/v1/reservations/add", map[string]any{
		"Reservations": []map[string]any{{
			"ServiceId":  a.serviceID,
			"ResourceId": b.RoomID,
			"CustomerId": cust.ID,
			"StartUtc":   b.CheckIn.UTC().Format(time.RFC3339),
			"EndUtc":     b.CheckOut.UTC().Format(time.RFC3339),
			"State":      stateFromStatus(b.Status),
			"Notes":      b.SpecialRequests,
			"AdultCount": b.Guests,
		}},
	}, &resp)
	if err != nil {
		return nil, domain.Backend("create booking", err)
	}
	if len(resp.Reservations) == 0 {
		return nil, domain.Backend("create booking", errEmptyReservations)
	}

	created := reservationToBooking(resp.Reservations[0])
	// the connector does not price on creation, keep our computed total
	if created.TotalPrice == 0 {
		created.TotalPrice = b.TotalPrice
	}
	return &created, nil
}

func (a *Adapter) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	body := map[string]any{"ReservationId": id}
	if patch.RoomID != nil {
		body["ResourceId"] = *patch.RoomID
	}
	if patch.CheckIn != nil {
		body["StartUtc"] = patch.CheckIn.UTC().Format(time.RFC3339)
	}
	if patch.CheckOut != nil {
		body["EndUtc"] = patch.CheckOut.UTC().Format(time.RFC3339)
	}
	if patch.Guests != nil {
		body["AdultCount"] = *patch.Guests
	}
	if patch.SpecialRequests != nil {
		body["Notes"] = *patch.SpecialRequests
	}
	if patch.Status != nil {
		body["State"] = stateFromStatus(*patch.Status)
	}

	var resp struct {
		Reservations []reservation `json:"Reservations"`
	}
	if err := a.client.post(ctx, "/api/connector/v1/reservations/update", body, &resp); err != nil {
		return nil, domain.Backend("update booking", err)
	}
	if len(resp.Reservations) == 0 {
		return nil, domain.Backend("update booking", errEmptyReservations)
	}
	updated := reservationToBooking(resp.Reservations[0])
	return &updated, nil
}

func (a *Adapter) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var resp struct {
		Reservations []reservation `json:"Reservations"`
	}
	err := a.client.post(ctx, "/api/connector/v1/reservations/getAll", map[string]any{
		"ReservationIds": []string{id},
	}, &resp)
	if err != nil {
		return nil, domain.Backend("get booking", err)
	}
	if len(resp.Reservations) == 0 {
		return nil, nil
	}
	b := reservationToBooking(resp.Reservations[0])
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

	reservations, err := a.activeReservations(ctx, []string{room.ID})
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, nil
	}
	b := reservationToBooking(reservations[0])
	return &b, nil
}

func (a *Adapter) SearchActiveBookings(ctx context.Context, q domain.BookingSearch) ([]domain.Booking, error) {
	var resourceIDs []string
	if q.RoomNumber != "" {
		room, err := a.GetRoomByNumber(ctx, q.RoomNumber)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return []domain.Booking{}, nil
		}
		resourceIDs = []string{room.ID}
	}

	reservations, err := a.activeReservations(ctx, resourceIDs)
	if err != nil {
		return nil, err
	}

	// the connector cannot express substring search, filter in memory
	out := make([]domain.Booking, 0, len(reservations))
	for _, r := range reservations {
		b := reservationToBooking(r)
		if matchesSearch(b, q) {
			out = append(out, b)
		}
	}
	return out, nil
}

// matchesSearch ANDs the guest criteria: name and email are case-insensitive
// substring matches, the phone match is case-sensitive over the digits.
func matchesSearch(b domain.Booking, q domain.BookingSearch) bool {
	if q.GuestName != "" && !containsFold(b.GuestName, q.GuestName) {
		return false
	}
	if q.GuestEmail != "" && !containsFold(b.GuestEmail, q.GuestEmail) {
		return false
	}
	if q.GuestPhone != "" && !strings.Contains(b.GuestPhone, q.GuestPhone) {
		return false
	}
	return true
}

func (a *Adapter) activeReservations(ctx context.Context, resourceIDs []string) ([]reservation, error) {
	body := map[string]any{
		"ServiceIds": []string{a.serviceID},
		// Started is the connector's name for checked-in
		"States": []string{"Confirmed", "Started"},
	}
	if len(resourceIDs) > 0 {
		body["ResourceIds"] = resourceIDs
	}

	var resp struct {
		Reservations []reservation `json:"Reservations"`
	}
	if err := a.client.post(ctx, "/api/connector/v1/reservations/getAll", body, &resp); err != nil {
		return nil, domain.Backend("list active reservations", err)
	}
	return resp.Reservations, nil
}

func (a *Adapter) GetMenu(ctx context.Context, category string) ([]domain.MenuItem, error) {
	products, err := a.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, 0, len(products))
	for _, p := range products {
		item := productToMenuItem(p)
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (a *Adapter) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	products, err := a.listProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			item := productToMenuItem(p)
			return &item, nil
		}
	}
	return nil, nil
}

func (a *Adapter) listProducts(ctx context.Context) ([]product, error) {
	var resp struct {
		Products []product `json:"Products"`
	}
	err := a.client.post(ctx, "/api/connector/v1/products/getAll", map[string]any{
		"ServiceIds": []string{a.serviceID},
	}, &resp)
	if err != nil {
		return nil, domain.Backend("list products", err)
	}
	return resp.Products, nil
}

func (a *Adapter) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"ProductId": it.MenuItemID,
			"Count":     it.Quantity,
		})
	}

	var resp struct {
		OrderID string `json:"OrderId"`
	}
	err := a.client.post(ctx, "/api/connector/v1/orders/add", map[string]any{
		"ServiceId":     a.serviceID,
		"ProductOrders": items,
		"Notes":         o.SpecialInstructions,
	}, &resp)
	if err != nil {
		return nil, domain.Backend("create room service order", err)
	}

	created := o
	created.ID = resp.OrderID
	return &created, nil
}

func (a *Adapter) lookupOrCreateCustomer(ctx context.Context, name, email, phone string) (*customer, error) {
	if email != "" {
		var resp struct {
			Customers []customer `json:"Customers"`
		}
		err := a.client.post(ctx, "/api/connector/v1/customers/search", map[string]any{
			"Email": email,
		}, &resp)
		if err == nil && len(resp.Customers) > 0 {
			return &resp.Customers[0], nil
		}
		// not found or search unsupported, fall through to create
	}

	first, last := splitName(name)
	var resp struct {
		Customers []customer `json:"Customers"`
	}
	err := a.client.post(ctx, "/api/connector/v1/customers/add", map[string]any{
		"Customers": []map[string]any{{
			"FirstName": first,
			"LastName":  last,
			"Email":     email,
			"Phone":     phone,
		}},
	}, &resp)
	if err != nil {
		return nil, domain.Backend("create customer", err)
	}
	if len(resp.Customers) == 0 {
		return nil, domain.Backend("create customer", errEmptyCustomers)
	}
	return &resp.Customers[0], nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
