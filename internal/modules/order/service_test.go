package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hospitalityhub/internal/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetMenu(ctx context.Context, category string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockStore) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockStore) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func TestService_Create_ComputesTotalAndSnapshotsItems(t *testing.T) {
	store := new(MockStore)
	store.On("GetMenuItem", mock.Anything, "m1").
		Return(&domain.MenuItem{ID: "m1", Name: "Club Sandwich", Price: 12.5, Available: true}, nil)
	store.On("GetMenuItem", mock.Anything, "m2").
		Return(&domain.MenuItem{ID: "m2", Name: "Lemonade", Price: 4, Available: true}, nil)

	orderTime := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.TotalAmount == 2*12.5+3*4 &&
			o.Status == domain.OrderPending &&
			o.OrderTime.Equal(orderTime) &&
			len(o.Items) == 2 &&
			o.Items[0].Name == "Club Sandwich" &&
			o.Items[0].Price == 12.5
	})).Return(&domain.Order{ID: "o1"}, nil)

	service := NewService(store)
	service.now = func() time.Time { return orderTime }

	o, err := service.Create(context.Background(), CreateRequest{
		RoomNumber: "101",
		Items: []OrderLine{
			{MenuItemID: "m1", Quantity: 2},
			{MenuItemID: "m2", Quantity: 3},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, o)
	store.AssertExpectations(t)
}

func TestService_Create_UnknownItemFailsWholeOrder(t *testing.T) {
	store := new(MockStore)
	store.On("GetMenuItem", mock.Anything, "m1").
		Return(&domain.MenuItem{ID: "m1", Name: "Soup", Price: 8, Available: true}, nil)
	store.On("GetMenuItem", mock.Anything, "missing").Return(nil, nil)

	service := NewService(store)
	_, err := service.Create(context.Background(), CreateRequest{
		RoomNumber: "101",
		Items: []OrderLine{
			{MenuItemID: "m1", Quantity: 1},
			{MenuItemID: "missing", Quantity: 1},
		},
	})

	assert.EqualError(t, err, "Menu item missing not found")
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestService_Create_UnavailableItemNamesIt(t *testing.T) {
	store := new(MockStore)
	store.On("GetMenuItem", mock.Anything, "m1").
		Return(&domain.MenuItem{ID: "m1", Name: "Oysters", Price: 24, Available: false}, nil)

	service := NewService(store)
	_, err := service.Create(context.Background(), CreateRequest{
		RoomNumber: "101",
		Items:      []OrderLine{{MenuItemID: "m1", Quantity: 1}},
	})

	assert.EqualError(t, err, "Menu item Oysters is not available")
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsEmptyOrder(t *testing.T) {
	service := NewService(new(MockStore))
	_, err := service.Create(context.Background(), CreateRequest{RoomNumber: "101"})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestService_Create_RejectsNonPositiveQuantity(t *testing.T) {
	service := NewService(new(MockStore))
	_, err := service.Create(context.Background(), CreateRequest{
		RoomNumber: "101",
		Items:      []OrderLine{{MenuItemID: "m1", Quantity: 0}},
	})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantity", ve.Field)
}

func TestService_Menu_AppliesFilters(t *testing.T) {
	store := new(MockStore)
	store.On("GetMenu", mock.Anything, "dinner").Return([]domain.MenuItem{
		{ID: "m1", Category: "dinner", Available: true, Vegetarian: boolPtr(true)},
		{ID: "m2", Category: "dinner", Available: true, Vegetarian: boolPtr(false)},
		{ID: "m3", Category: "dinner", Available: false, Vegetarian: boolPtr(true)},
	}, nil)

	service := NewService(store)
	items, err := service.Menu(context.Background(), MenuRequest{
		Category:   "dinner",
		Vegetarian: true,
	})

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}

func boolPtr(v bool) *bool { return &v }
