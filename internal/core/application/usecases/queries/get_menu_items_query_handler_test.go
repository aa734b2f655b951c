package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

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

func Test_GetMenuItemsQueryHandler_MapsItems(t *testing.T) {
	ctx := context.Background()
	burger, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, 10, "Beef burger",
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	repo := &MockMenuItemRepository{}
	repo.On("GetAll", ctx).Return([]*menu.MenuItem{burger}, nil)

	handler := queries.NewGetMenuItemsQueryHandler(repo)

	items, err := handler.Handle(ctx, queries.NewGetMenuItemsQuery())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
	assert.InDelta(t, 5.50, items[0].Price, 0.001)
	assert.Equal(t, 10, items[0].Stock)
}

func Test_GetMenuItemsQueryHandler_RejectsUnconstructedQuery(t *testing.T) {
	repo := &MockMenuItemRepository{}
	handler := queries.NewGetMenuItemsQueryHandler(repo)

	_, err := handler.Handle(context.Background(), queries.GetMenuItemsQuery{})

	assert.ErrorIs(t, err, queries.ErrGetMenuItemsQueryIsNotConstructed)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}
