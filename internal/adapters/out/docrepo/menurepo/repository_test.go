package menurepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/adapters/out/memstore"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
)

func newRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(memstore.NewStore())
	require.NoError(t, err)
	return repo
}

func newBurger(t *testing.T) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, 10,
		"Beef burger", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return item
}

func Test_Repository_AddAndGet_RoundTrip(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	item := newBurger(t)

	require.NoError(t, repo.Add(ctx, item))

	got, err := repo.Get(ctx, item.ID())
	require.NoError(t, err)
	assert.True(t, item.ID().IsEqual(got.ID()))
	assert.Equal(t, "Burger", got.Name())
	assert.InDelta(t, 5.50, got.Price(), 0.001)
	assert.Equal(t, 10, got.Stock())
	assert.Equal(t, "Beef burger", got.Description())
}

func Test_Repository_Update_KeepsKey(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	item := newBurger(t)
	require.NoError(t, repo.Add(ctx, item))

	require.NoError(t, item.Update("Cheeseburger", 6.00, 8, "With cheddar"))
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.Get(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger", got.Name())
	assert.InDelta(t, 6.00, got.Price(), 0.001)
	assert.Equal(t, 8, got.Stock())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "update must not duplicate the item")
}

func Test_Repository_Update_UnknownItemIsNotFound(t *testing.T) {
	repo := newRepository(t)
	item := newBurger(t)

	err := repo.Update(context.Background(), item)

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Repository_Remove_DeletesItem(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	item := newBurger(t)
	require.NoError(t, repo.Add(ctx, item))

	require.NoError(t, repo.Remove(ctx, item.ID()))

	_, err := repo.Get(ctx, item.ID())
	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Repository_Remove_UnknownItemIsNotFound(t *testing.T) {
	repo := newRepository(t)

	err := repo.Remove(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Repository_GetAll_ReturnsArrivalOrder(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	first := newBurger(t)
	second, err := menu.NewMenuItem(kernel.NewUUID(), "Fries", 2.50, 30, "",
		time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Burger", all[0].Name())
	assert.Equal(t, "Fries", all[1].Name())
}
