package tools

// Definition describes one callable tool to agent clients. Parameters follow
// JSON Schema conventions so clients can validate arguments before calling.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

const (
	ToolCheckAvailability = "check_availability"
	ToolCreateBooking     = "create_booking"
	ToolUpdateBooking     = "update_booking"
	ToolGetMenu           = "get_menu"
	ToolCreateOrder       = "create_room_service_order"
	ToolGetRoomInfo       = "get_room_info"
	ToolGetActiveBooking  = "get_active_booking"
)

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func integer(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolean(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func object(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Definitions returns every tool this server exposes, in a stable order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        ToolCheckAvailability,
			Description: "Check room availability for the given dates. Returns every room that can host the stay.",
			Parameters: object(map[string]any{
				"checkIn":  str("Check-in date in YYYY-MM-DD format"),
				"checkOut": str("Check-out date in YYYY-MM-DD format"),
				"guests":   integer("Number of guests"),
				"roomType": str("Optional room type filter, e.g. standard, deluxe, suite"),
			}, "checkIn", "checkOut"),
		},
		{
			Name:        ToolCreateBooking,
			Description: "Create a new booking for a room. The total price is computed server-side from the room's nightly rate.",
			Parameters: object(map[string]any{
				"roomId":          str("Room number or room identifier"),
				"guestName":       str("Full name of the guest"),
				"guestEmail":      str("Guest email address"),
				"guestPhone":      str("Guest phone number"),
				"checkIn":         str("Check-in date in YYYY-MM-DD format"),
				"checkOut":        str("Check-out date in YYYY-MM-DD format"),
				"guests":          integer("Number of guests"),
				"specialRequests": str("Free-form special requests"),
			}, "roomId", "guestName", "checkIn", "checkOut", "guests"),
		},
		{
			Name:        ToolUpdateBooking,
			Description: "Update an existing booking. Only the supplied fields change; changing dates or room recomputes the total price.",
			Parameters: object(map[string]any{
				"bookingId":       str("Identifier of the booking to update"),
				"roomId":          str("New room number or identifier"),
				"guestName":       str("New guest name"),
				"guestEmail":      str("New guest email"),
				"guestPhone":      str("New guest phone"),
				"checkIn":         str("New check-in date in YYYY-MM-DD format"),
				"checkOut":        str("New check-out date in YYYY-MM-DD format"),
				"guests":          integer("New number of guests"),
				"status":          str("New status: confirmed, checked-in, checked-out or cancelled"),
				"specialRequests": str("New special requests"),
			}, "bookingId"),
		},
		{
			Name:        ToolGetMenu,
			Description: "List the room service menu, optionally filtered by category, dietary needs and allergens.",
			Parameters: object(map[string]any{
				"category":   str("Menu category, e.g. breakfast, lunch, dinner, drinks"),
				"vegetarian": boolean("Only vegetarian items"),
				"vegan":      boolean("Only vegan items"),
				"glutenFree": boolean("Only gluten-free items"),
				"excludeAllergens": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Allergens to exclude, e.g. nuts, dairy",
				},
			}),
		},
		{
			Name:        ToolCreateOrder,
			Description: "Place a room service order. Every item must exist and be available; the total is computed server-side.",
			Parameters: object(map[string]any{
				"roomNumber": str("Room number the order is delivered to"),
				"items": map[string]any{
					"type": "array",
					"items": object(map[string]any{
						"menuItemId": str("Identifier of the menu item"),
						"quantity":   integer("How many to order"),
					}, "menuItemId", "quantity"),
					"description": "Items to order",
				},
				"specialInstructions": str("Delivery or preparation instructions"),
			}, "roomNumber", "items"),
		},
		{
			Name:        ToolGetRoomInfo,
			Description: "Get details for a single room by its room number.",
			Parameters: object(map[string]any{
				"roomNumber": str("Room number to look up"),
			}, "roomNumber"),
		},
		{
			Name:        ToolGetActiveBooking,
			Description: "Find active bookings by room number, guest details or booking id. At least one parameter is required.",
			Parameters: object(map[string]any{
				"roomNumber": str("Room number to look up"),
				"guestName":  str("Guest name, matched case-insensitively"),
				"guestEmail": str("Guest email, matched case-insensitively"),
				"guestPhone": str("Guest phone number"),
				"bookingId":  str("Booking identifier, overrides all other parameters"),
			}),
		},
	}
}
