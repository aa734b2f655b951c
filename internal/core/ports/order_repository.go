package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderStream is a live, typed view of one bucket. It is the repository-level
// counterpart of Subscription: raw documents are already mapped to order
// aggregates.
type OrderStream interface {
	// Orders returns the snapshot channel. Each delivery is the bucket's full
	// materialized sequence in store arrival order.
	Orders() <-chan []*order.Order

	// Unsubscribe releases the underlying live query. Safe to call at any
	// time; idempotent; no deliveries happen after it returns.
	Unsubscribe()
}

// OrderRepository provides typed access to the four order buckets and
// executes lifecycle transitions as atomic batches.
type OrderRepository interface {
	// Get retrieves the order stored under key in the given bucket.
	// Returns errs.ObjectNotFoundError when the bucket holds no such
	// document. A key that exists in another bucket is still "not found":
	// keys are never shared across buckets.
	Get(ctx context.Context, bucket order.Bucket, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the bucket's current orders in store arrival order.
	GetAll(ctx context.Context, bucket order.Bucket) ([]*order.Order, error)

	// Observe opens a live typed view of the bucket.
	Observe(ctx context.Context, bucket order.Bucket) (OrderStream, error)

	// CommitTransition applies a lifecycle transition as one atomic batch:
	// insert the moved copy into the destination bucket, delete the source
	// document, insert the transition's notification. No partial application
	// is ever observable. Returns errs.CommitConflictError when the source
	// document vanished (a concurrent actor already moved it) and
	// errs.StoreUnavailableError on transport failure; in both cases the
	// store is unchanged.
	CommitTransition(ctx context.Context, transition *order.Transition) error
}
