package menu_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
)

func newBurger(t *testing.T) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, 10,
		"Classic beef burger", time.Now())
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now()

		item, err := menu.NewMenuItem(id, "Burger", 5.50, 10, "Classic", createdAt)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Burger", item.Name())
		assert.InDelta(t, 5.50, item.Price(), 0.001)
		assert.Equal(t, 10, item.Stock())
		assert.Equal(t, "Classic", item.Description())
		assert.Equal(t, createdAt, item.CreatedAt())
		require.NoError(t, item.Validate())
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, 10, "", time.Now())

		require.NoError(t, err)
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.UUID{}, "Burger", 5.50, 10, "", time.Now())

		require.Error(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "", 5.50, 10, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", -0.01, 10, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, -1, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero creation time is rejected", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), "Burger", 5.50, 10, "", time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreMenuItem(t *testing.T) {
	original := newBurger(t)

	restored, err := menu.RestoreMenuItem(original.ID(), original.Name(),
		original.Price(), original.Stock(), original.Description(), original.CreatedAt())

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
	assert.Equal(t, original.Name(), restored.Name())
}

func TestMenuItem_Update(t *testing.T) {
	t.Run("replaces mutable fields", func(t *testing.T) {
		item := newBurger(t)
		id := item.ID()
		createdAt := item.CreatedAt()

		err := item.Update("Cheeseburger", 6.50, 8, "Now with cheese")

		require.NoError(t, err)
		assert.Equal(t, "Cheeseburger", item.Name())
		assert.InDelta(t, 6.50, item.Price(), 0.001)
		assert.Equal(t, 8, item.Stock())
		assert.Equal(t, "Now with cheese", item.Description())
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, createdAt, item.CreatedAt())
	})

	t.Run("invalid update leaves item unchanged", func(t *testing.T) {
		item := newBurger(t)

		err := item.Update("", -1, -1, "")

		require.Error(t, err)
		assert.Equal(t, "Burger", item.Name())
	})

	t.Run("not constructed item is rejected", func(t *testing.T) {
		var item menu.MenuItem

		err := item.Update("Burger", 5.50, 10, "")

		assert.ErrorIs(t, err, menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_Validate(t *testing.T) {
	var notConstructed menu.MenuItem

	assert.ErrorIs(t, notConstructed.Validate(), menu.ErrMenuItemIsNotConstructed)
	assert.NoError(t, newBurger(t).Validate())
}
