package liveview

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/adapters/out/docrepo/orderrepo"
	"canteen/internal/adapters/out/memstore"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

func newManager(t *testing.T) (*Manager, *memstore.Store) {
	t.Helper()
	store := memstore.NewStore()
	repo, err := orderrepo.NewRepository(store, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	manager, err := NewManager(repo, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return manager, store
}

func seedOrder(t *testing.T, store *memstore.Store, bucket order.Bucket, orderNumber string) {
	t.Helper()
	err := store.CommitBatch(context.Background(), []ports.BatchOp{
		ports.InsertOp(bucket.Collection(), map[string]any{
			"orderNumber": orderNumber,
			"userId":      "u1",
			"items":       []any{map[string]any{"name": "Burger", "quantity": 1}},
			"totalCost":   5.5,
			"timeslot":    "",
			"status":      bucket.Status().String(),
			"createdAt":   time.Now().UTC().Format(time.RFC3339Nano),
		}),
	})
	require.NoError(t, err)
}

func Test_Manager_Start_MaterializesExistingBuckets(t *testing.T) {
	manager, store := newManager(t)
	seedOrder(t, store, order.BucketPending, "A-1")
	seedOrder(t, store, order.BucketPrepared, "A-2")

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Stop()

	require.Eventually(t, func() bool {
		return len(manager.Orders(order.BucketPending)) == 1 &&
			len(manager.Orders(order.BucketPrepared)) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "A-1", manager.Orders(order.BucketPending)[0].OrderNumber())
	assert.Equal(t, "A-2", manager.Orders(order.BucketPrepared)[0].OrderNumber())
	assert.Empty(t, manager.Orders(order.BucketCompleted))
}

func Test_Manager_ViewFollowsCommits(t *testing.T) {
	manager, store := newManager(t)
	require.NoError(t, manager.Start(context.Background()))
	defer manager.Stop()

	seedOrder(t, store, order.BucketCompleted, "A-7")

	require.Eventually(t, func() bool {
		view := manager.Orders(order.BucketCompleted)
		return len(view) == 1 && view[0].OrderNumber() == "A-7"
	}, time.Second, 10*time.Millisecond)
}

func Test_Manager_ObserverIsNotifiedAndCanUnregister(t *testing.T) {
	manager, store := newManager(t)

	var mu sync.Mutex
	seen := make(map[order.Bucket]int)
	unregister := manager.Register(func(bucket order.Bucket, _ []*order.Order) {
		mu.Lock()
		defer mu.Unlock()
		seen[bucket]++
	})

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Stop()

	seedOrder(t, store, order.BucketPending, "A-1")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen[order.BucketPending] > 0
	}, time.Second, 10*time.Millisecond)

	unregister()
	unregister() // idempotent

	mu.Lock()
	before := seen[order.BucketPending]
	mu.Unlock()

	seedOrder(t, store, order.BucketPending, "A-2")

	require.Eventually(t, func() bool {
		return len(manager.Orders(order.BucketPending)) == 2
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	after := seen[order.BucketPending]
	mu.Unlock()
	assert.Equal(t, before, after, "unregistered observer must not be called")
}

func Test_Manager_Stop_SilencesObservers(t *testing.T) {
	manager, store := newManager(t)

	var mu sync.Mutex
	calls := 0
	manager.Register(func(order.Bucket, []*order.Order) {
		mu.Lock()
		defer mu.Unlock()
		calls++
	})

	require.NoError(t, manager.Start(context.Background()))
	manager.Stop()
	manager.Stop() // idempotent

	mu.Lock()
	settled := calls
	mu.Unlock()

	seedOrder(t, store, order.BucketPending, "A-1")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, settled, calls, "no callbacks after Stop returns")
}

func Test_Manager_Start_IsIdempotent(t *testing.T) {
	manager, _ := newManager(t)

	require.NoError(t, manager.Start(context.Background()))
	require.NoError(t, manager.Start(context.Background()))
	manager.Stop()
}

func Test_Manager_Orders_ReturnsDetachedCopy(t *testing.T) {
	manager, store := newManager(t)
	seedOrder(t, store, order.BucketPending, "A-1")

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Stop()

	require.Eventually(t, func() bool {
		return len(manager.Orders(order.BucketPending)) == 1
	}, time.Second, 10*time.Millisecond)

	view := manager.Orders(order.BucketPending)
	view[0] = nil

	again := manager.Orders(order.BucketPending)
	require.Len(t, again, 1)
	assert.NotNil(t, again[0])
}
