package mews

import (
	"strings"
	"time"

	"hospitalityhub/internal/domain"
)

// Wire shapes of the connector API. Rooms are "resources", bookings are
// "reservations".

type amount struct {
	Amount   float64 `json:"Amount"`
	Currency string  `json:"Currency"`
}

type resource struct {
	ID          string  `json:"Id"`
	Name        string  `json:"Name"`
	Number      string  `json:"Number"`
	Type        string  `json:"Type"`
	State       string  `json:"State"`
	Capacity    int     `json:"Capacity"`
	Description string  `json:"Description"`
	Price       *amount `json:"Price"`
}

type resourceAvailability struct {
	ResourceID     string `json:"ResourceId"`
	AvailableCount int    `json:"AvailableCount"`
}

type reservation struct {
	ID            string  `json:"Id"`
	ResourceID    string  `json:"ResourceId"`
	ResourceName  string  `json:"ResourceName"`
	CustomerName  string  `json:"CustomerName"`
	CustomerEmail string  `json:"CustomerEmail"`
	CustomerPhone string  `json:"CustomerPhone"`
	StartUTC      string  `json:"StartUtc"`
	EndUTC        string  `json:"EndUtc"`
	State         string  `json:"State"`
	Notes         string  `json:"Notes"`
	AdultCount    int     `json:"AdultCount"`
	TotalAmount   *amount `json:"TotalAmount"`
}

type customer struct {
	ID        string `json:"Id"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
	Phone     string `json:"Phone"`
}

type product struct {
	ID           string  `json:"Id"`
	Name         string  `json:"Name"`
	Description  string  `json:"Description"`
	CategoryName string  `json:"CategoryName"`
	IsActive     bool    `json:"IsActive"`
	Price        *amount `json:"Price"`
}

// The status vocabularies differ between this system and the connector API;
// translation is a fixed bidirectional table.

var stateByStatus = map[domain.BookingStatus]string{
	domain.BookingConfirmed:  "Confirmed",
	domain.BookingCheckedIn:  "Started",
	domain.BookingCheckedOut: "Processed",
	domain.BookingCancelled:  "Canceled",
}

var statusByState = map[string]domain.BookingStatus{
	"Confirmed": domain.BookingConfirmed,
	"Started":   domain.BookingCheckedIn,
	"Processed": domain.BookingCheckedOut,
	"Canceled":  domain.BookingCancelled,
}

func stateFromStatus(s domain.BookingStatus) string {
	if state, ok := stateByStatus[s]; ok {
		return state
	}
	return "Confirmed"
}

func statusFromState(state string) domain.BookingStatus {
	if s, ok := statusByState[state]; ok {
		return s
	}
	return domain.BookingConfirmed
}

// resourceStatus folds the housekeeping states into our room status: only
// out-of-service resources are blocked, the rest count as available.
func resourceStatus(state string) domain.RoomStatus {
	if state == "OutOfService" || state == "OutOfOrder" {
		return domain.RoomMaintenance
	}
	return domain.RoomAvailable
}

func resourceToRoom(r resource) domain.Room {
	number := r.Name
	if number == "" {
		number = r.Number
	}
	roomType := r.Type
	if roomType == "" {
		roomType = "standard"
	}
	capacity := r.Capacity
	if capacity == 0 {
		capacity = 2
	}
	room := domain.Room{
		ID:        r.ID,
		Number:    number,
		Type:      roomType,
		Capacity:  capacity,
		Amenities: splitList(r.Description),
		Status:    resourceStatus(r.State),
	}
	if r.Price != nil {
		room.Price = r.Price.Amount
	}
	return room
}

func reservationToBooking(r reservation) domain.Booking {
	guests := r.AdultCount
	if guests == 0 {
		guests = 1
	}
	b := domain.Booking{
		ID:              r.ID,
		RoomID:          r.ResourceID,
		RoomNumber:      r.ResourceName,
		GuestName:       r.CustomerName,
		GuestEmail:      r.CustomerEmail,
		GuestPhone:      r.CustomerPhone,
		CheckIn:         parseUTC(r.StartUTC),
		CheckOut:        parseUTC(r.EndUTC),
		Guests:          guests,
		Status:          statusFromState(r.State),
		SpecialRequests: r.Notes,
	}
	if r.TotalAmount != nil {
		b.TotalPrice = r.TotalAmount.Amount
	}
	return b
}

func productToMenuItem(p product) domain.MenuItem {
	item := domain.MenuItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.CategoryName,
		Available:   p.IsActive,
		Allergens:   []string{},
	}
	if p.Price != nil {
		item.Price = p.Price.Amount
	}
	return item
}

func parseUTC(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t, err = domain.ParseDate(v)
		if err != nil {
			return time.Time{}
		}
	}
	return t.UTC()
}

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
