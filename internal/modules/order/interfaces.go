package order

import (
	"context"

	"hospitalityhub/internal/domain"
)

// Store is the slice of the PMS capability surface this module needs.
type Store interface {
	GetMenu(ctx context.Context, category string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
}
