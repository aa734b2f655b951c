package services_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAt(t *testing.T, orderNumber string, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), orderNumber, "u1", nil, 1, "", order.Completed, createdAt)
	require.NoError(t, err)
	return o
}

func TestRetentionPolicy_Apply(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	policy := services.NewRetentionPolicy(services.DefaultRetentionWindow)

	t.Run("keeps only the trailing seven days, newest first", func(t *testing.T) {
		day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
		orders := []*order.Order{
			completedAt(t, "d0", day(0)),
			completedAt(t, "d-3", day(-3)),
			completedAt(t, "d-6", day(-6)),
			completedAt(t, "d-8", day(-8)),
			completedAt(t, "d-10", day(-10)),
		}

		recent := policy.Apply(orders, now)

		require.Len(t, recent, 3)
		assert.Equal(t, "d0", recent[0].OrderNumber())
		assert.Equal(t, "d-3", recent[1].OrderNumber())
		assert.Equal(t, "d-6", recent[2].OrderNumber())
	})

	t.Run("cutoff is inclusive", func(t *testing.T) {
		exactly := completedAt(t, "edge", now.Add(-services.DefaultRetentionWindow))
		justOver := completedAt(t, "over", now.Add(-services.DefaultRetentionWindow-time.Second))

		recent := policy.Apply([]*order.Order{exactly, justOver}, now)

		require.Len(t, recent, 1)
		assert.Equal(t, "edge", recent[0].OrderNumber())
	})

	t.Run("ties keep arrival order", func(t *testing.T) {
		ts := now.Add(-time.Hour)
		first := completedAt(t, "first", ts)
		second := completedAt(t, "second", ts)

		recent := policy.Apply([]*order.Order{first, second}, now)

		require.Len(t, recent, 2)
		assert.Equal(t, "first", recent[0].OrderNumber())
		assert.Equal(t, "second", recent[1].OrderNumber())
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		older := completedAt(t, "older", now.Add(-2*time.Hour))
		newer := completedAt(t, "newer", now.Add(-time.Hour))
		orders := []*order.Order{older, newer}

		_ = policy.Apply(orders, now)

		assert.Equal(t, "older", orders[0].OrderNumber())
		assert.Equal(t, "newer", orders[1].OrderNumber())
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		recent := policy.Apply([]*order.Order{nil, completedAt(t, "d0", now)}, now)

		require.Len(t, recent, 1)
	})
}

func TestNewRetentionPolicy_DefaultWindow(t *testing.T) {
	assert.Equal(t, services.DefaultRetentionWindow, services.NewRetentionPolicy(0).Window())
	assert.Equal(t, services.DefaultRetentionWindow, services.NewRetentionPolicy(-time.Hour).Window())
	assert.Equal(t, 48*time.Hour, services.NewRetentionPolicy(48*time.Hour).Window())
}

func TestRetentionPolicy_Validate(t *testing.T) {
	policy := services.NewRetentionPolicy(0)

	require.NoError(t, policy.Validate([]*order.Order{completedAt(t, "d0", time.Now())}))
	require.Error(t, policy.Validate([]*order.Order{{}}))
}
