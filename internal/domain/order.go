package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem carries a name/price snapshot taken at order time so historical
// orders are immune to later menu changes.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID                  string      `json:"id"`
	RoomNumber          string      `json:"roomNumber"`
	Items               []OrderItem `json:"items"`
	TotalAmount         float64     `json:"totalAmount"`
	OrderTime           time.Time   `json:"orderTime"`
	Status              OrderStatus `json:"status"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
}
