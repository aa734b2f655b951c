package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, bucket order.Bucket, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, bucket, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, bucket order.Bucket) ([]*order.Order, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Observe(ctx context.Context, bucket order.Bucket) (ports.OrderStream, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.OrderStream), args.Error(1)
}

func (m *MockOrderRepository) CommitTransition(ctx context.Context, transition *order.Transition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func newPendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("Burger", 2)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "A-42", "u1", []order.Item{item}, 11.0, "12:00-12:30",
		time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func newPreparedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("Burger", 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "A-42", "u1", []order.Item{item}, 11.0, "12:00-12:30",
		order.Prepared, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func newBurgerItem(t *testing.T, id kernel.UUID) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, "Burger", 5.50, 10, "Beef burger",
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return item
}
