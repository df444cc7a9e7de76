package airtable

import (
	"encoding/json"
	"strings"
	"time"

	"hospitalityhub/internal/domain"
)

// Backend field names. The table store capitalizes its columns.
const (
	fieldNumber    = "Number"
	fieldType      = "Type"
	fieldPrice     = "Price"
	fieldCapacity  = "Capacity"
	fieldAmenities = "Amenities"
	fieldStatus    = "Status"

	fieldRoomID          = "RoomId"
	fieldRoomNumber      = "RoomNumber"
	fieldGuestName       = "GuestName"
	fieldGuestEmail      = "GuestEmail"
	fieldGuestPhone      = "GuestPhone"
	fieldCheckIn         = "CheckIn"
	fieldCheckOut        = "CheckOut"
	fieldGuests          = "Guests"
	fieldTotalPrice      = "TotalPrice"
	fieldSpecialRequests = "SpecialRequests"

	fieldName        = "Name"
	fieldDescription = "Description"
	fieldCategory    = "Category"
	fieldAvailable   = "Available"
	fieldAllergens   = "Allergens"
	fieldVegetarian  = "Vegetarian"
	fieldVegan       = "Vegan"
	fieldGlutenFree  = "GlutenFree"

	fieldItems               = "Items"
	fieldTotalAmount         = "TotalAmount"
	fieldOrderTime           = "OrderTime"
	fieldSpecialInstructions = "SpecialInstructions"
)

// Mapping is best-effort by design: missing fields become zero values, never
// mapper errors.

func recordToRoom(rec Record) domain.Room {
	return domain.Room{
		ID:        rec.ID,
		Number:    str(rec.Fields, fieldNumber),
		Type:      str(rec.Fields, fieldType),
		Price:     num(rec.Fields, fieldPrice),
		Capacity:  whole(rec.Fields, fieldCapacity),
		Amenities: splitList(str(rec.Fields, fieldAmenities)),
		Status:    domain.RoomStatus(str(rec.Fields, fieldStatus)),
	}
}

func roomFields(r domain.Room) map[string]any {
	return map[string]any{
		fieldNumber:    r.Number,
		fieldType:      r.Type,
		fieldPrice:     r.Price,
		fieldCapacity:  r.Capacity,
		fieldAmenities: strings.Join(r.Amenities, ", "),
		fieldStatus:    string(r.Status),
	}
}

func recordToBooking(rec Record) domain.Booking {
	return domain.Booking{
		ID:              rec.ID,
		RoomID:          str(rec.Fields, fieldRoomID),
		RoomNumber:      str(rec.Fields, fieldRoomNumber),
		GuestName:       str(rec.Fields, fieldGuestName),
		GuestEmail:      str(rec.Fields, fieldGuestEmail),
		GuestPhone:      str(rec.Fields, fieldGuestPhone),
		CheckIn:         date(rec.Fields, fieldCheckIn),
		CheckOut:        date(rec.Fields, fieldCheckOut),
		Guests:          whole(rec.Fields, fieldGuests),
		TotalPrice:      num(rec.Fields, fieldTotalPrice),
		Status:          domain.BookingStatus(str(rec.Fields, fieldStatus)),
		SpecialRequests: str(rec.Fields, fieldSpecialRequests),
	}
}

func bookingFields(b domain.Booking) map[string]any {
	return map[string]any{
		fieldRoomID:          b.RoomID,
		fieldRoomNumber:      b.RoomNumber,
		fieldGuestName:       b.GuestName,
		fieldGuestEmail:      b.GuestEmail,
		fieldGuestPhone:      b.GuestPhone,
		fieldCheckIn:         b.CheckIn.Format(domain.DateLayout),
		fieldCheckOut:        b.CheckOut.Format(domain.DateLayout),
		fieldGuests:          b.Guests,
		fieldTotalPrice:      b.TotalPrice,
		fieldStatus:          string(b.Status),
		fieldSpecialRequests: b.SpecialRequests,
	}
}

// bookingPatchFields maps only the supplied fields: absent means untouched.
func bookingPatchFields(p domain.BookingPatch) map[string]any {
	fields := map[string]any{}
	if p.RoomID != nil {
		fields[fieldRoomID] = *p.RoomID
	}
	if p.RoomNumber != nil {
		fields[fieldRoomNumber] = *p.RoomNumber
	}
	if p.GuestName != nil {
		fields[fieldGuestName] = *p.GuestName
	}
	if p.GuestEmail != nil {
		fields[fieldGuestEmail] = *p.GuestEmail
	}
	if p.GuestPhone != nil {
		fields[fieldGuestPhone] = *p.GuestPhone
	}
	if p.CheckIn != nil {
		fields[fieldCheckIn] = p.CheckIn.Format(domain.DateLayout)
	}
	if p.CheckOut != nil {
		fields[fieldCheckOut] = p.CheckOut.Format(domain.DateLayout)
	}
	if p.Guests != nil {
		fields[fieldGuests] = *p.Guests
	}
	if p.TotalPrice != nil {
		fields[fieldTotalPrice] = *p.TotalPrice
	}
	if p.Status != nil {
		fields[fieldStatus] = string(*p.Status)
	}
	if p.SpecialRequests != nil {
		fields[fieldSpecialRequests] = *p.SpecialRequests
	}
	return fields
}

func recordToMenuItem(rec Record) domain.MenuItem {
	return domain.MenuItem{
		ID:          rec.ID,
		Name:        str(rec.Fields, fieldName),
		Description: str(rec.Fields, fieldDescription),
		Category:    str(rec.Fields, fieldCategory),
		Price:       num(rec.Fields, fieldPrice),
		Available:   boolean(rec.Fields, fieldAvailable),
		Allergens:   splitList(str(rec.Fields, fieldAllergens)),
		Vegetarian:  flag(rec.Fields, fieldVegetarian),
		Vegan:       flag(rec.Fields, fieldVegan),
		GlutenFree:  flag(rec.Fields, fieldGlutenFree),
	}
}

func recordToOrder(rec Record) domain.Order {
	var items []domain.OrderItem
	if raw := str(rec.Fields, fieldItems); raw != "" {
		// line items live in a single JSON text column
		_ = json.Unmarshal([]byte(raw), &items)
	}
	return domain.Order{
		ID:                  rec.ID,
		RoomNumber:          str(rec.Fields, fieldRoomNumber),
		Items:               items,
		TotalAmount:         num(rec.Fields, fieldTotalAmount),
		OrderTime:           timestamp(rec.Fields, fieldOrderTime),
		Status:              domain.OrderStatus(str(rec.Fields, fieldStatus)),
		SpecialInstructions: str(rec.Fields, fieldSpecialInstructions),
	}
}

func orderFields(o domain.Order) map[string]any {
	items, _ := json.Marshal(o.Items)
	return map[string]any{
		fieldRoomNumber:          o.RoomNumber,
		fieldItems:               string(items),
		fieldTotalAmount:         o.TotalAmount,
		fieldOrderTime:           o.OrderTime.UTC().Format(time.RFC3339),
		fieldStatus:              string(o.Status),
		fieldSpecialInstructions: o.SpecialInstructions,
	}
}

func str(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}

func num(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func whole(fields map[string]any, key string) int {
	return int(num(fields, key))
}

func boolean(fields map[string]any, key string) bool {
	v, _ := fields[key].(bool)
	return v
}

// flag keeps the absent/false distinction: a checkbox the backend never set
// maps to nil, not false.
func flag(fields map[string]any, key string) *bool {
	if v, ok := fields[key].(bool); ok {
		return &v
	}
	return nil
}

func date(fields map[string]any, key string) time.Time {
	t, err := domain.ParseDate(str(fields, key))
	if err != nil {
		return time.Time{}
	}
	return t
}

func timestamp(fields map[string]any, key string) time.Time {
	t, err := time.Parse(time.RFC3339, str(fields, key))
	if err != nil {
		return time.Time{}
	}
	return t
}

// splitList turns the backend's comma-delimited text column into a list.
// Empty input is an empty list, never a one-element list with "".
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
