package order

import (
	"context"
	"time"

	"hospitalityhub/internal/domain"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Menu lists orderable items. The category narrows the backend query where
// the adapter supports it; dietary and allergen filtering always run in
// memory over the fetched items.
func (s *Service) Menu(ctx context.Context, req MenuRequest) ([]domain.MenuItem, error) {
	items, err := s.store.GetMenu(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	return domain.FilterMenu(items, domain.MenuFilters{
		Category:         req.Category,
		Vegetarian:       req.Vegetarian,
		Vegan:            req.Vegan,
		GlutenFree:       req.GlutenFree,
		ExcludeAllergens: req.ExcludeAllergens,
	}), nil
}

// Create places a room service order. Every line item is resolved and
// validated before anything is written: a single missing or unavailable item
// fails the whole order and the error names it. The total is always computed
// here, never trusted from the caller, and each line snapshots the item's
// name and price at order time.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.Invalid("items", "order must contain at least one item")
	}

	var total float64
	lines := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, domain.Invalid("quantity", "must be a positive number")
		}

		item, err := s.store.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NotFound("Menu item", line.MenuItemID)
		}
		if !item.Available {
			return nil, domain.Unavailable("Menu item", item.Name)
		}

		total += item.Price * float64(line.Quantity)
		lines = append(lines, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Name:       item.Name,
			Price:      item.Price,
		})
	}

	return s.store.CreateOrder(ctx, domain.Order{
		RoomNumber:          req.RoomNumber,
		Items:               lines,
		TotalAmount:         total,
		OrderTime:           s.now().UTC(),
		Status:              domain.OrderPending,
		SpecialInstructions: req.SpecialInstructions,
	})
}
