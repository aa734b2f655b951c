// Package services contains stateless domain services that operate on
// aggregates without belonging to any single one.
package services

import (
	"sort"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// DefaultRetentionWindow is the trailing window the completed-orders view
// keeps: seven days.
const DefaultRetentionWindow = 7 * 24 * time.Hour

// RetentionPolicy derives the "recent completed" view from a bucket's
// materialized sequence: orders created within the trailing window, newest
// first.
//
// The policy is a pure function over its inputs. It holds no state, caches
// nothing, and is re-evaluated against the caller's clock on every call, so
// an order ages out of the view without any store activity.
//
// Example usage:
//
//	policy := services.NewRetentionPolicy(services.DefaultRetentionWindow)
//	recent := policy.Apply(completedView, time.Now())
type RetentionPolicy struct {
	window time.Duration
}

// NewRetentionPolicy creates a policy keeping orders created within the
// trailing window. A non-positive window falls back to the default seven
// days.
func NewRetentionPolicy(window time.Duration) RetentionPolicy {
	if window <= 0 {
		window = DefaultRetentionWindow
	}
	return RetentionPolicy{window: window}
}

// Window returns the trailing retention window.
func (p RetentionPolicy) Window() time.Duration {
	return p.window
}

// Apply filters orders to those created within the trailing window of now
// (inclusive lower bound) and sorts them by creation time descending. The
// sort is stable: orders with equal creation times keep their arrival order.
// The input slice is not modified.
func (p RetentionPolicy) Apply(orders []*order.Order, now time.Time) []*order.Order {
	cutoff := now.Add(-p.window)

	recent := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if !o.CreatedAt().Before(cutoff) {
			recent = append(recent, o)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt().After(recent[j].CreatedAt())
	})

	return recent
}

// Validate checks each order was properly constructed before applying the
// policy. Handy for callers that assembled the slice from untyped snapshots.
func (p RetentionPolicy) Validate(orders []*order.Order) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orders", err)
		}
	}
	return nil
}
