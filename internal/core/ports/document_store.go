// Package ports defines the contracts between the domain layer and
// infrastructure adapters, enabling dependency inversion and testability.
//
// The central abstraction is DocumentStore: a transactional, schema-less
// multi-document store with live-query subscriptions. The lifecycle engine's
// correctness rests entirely on its atomic batch commit; no client-side
// locking exists anywhere in the system.
package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
)

// Document is a raw store record: a store-assigned key plus schema-less
// fields. Typed mapping happens at the repository boundary.
type Document struct {
	Key    kernel.UUID
	Fields map[string]any
}

// BatchOpKind discriminates the operations an atomic batch can carry.
type BatchOpKind int

const (
	// OpUnknown represents an invalid or undefined operation.
	OpUnknown BatchOpKind = iota

	// OpInsert inserts a new document. When no key is supplied the store
	// assigns a fresh one.
	OpInsert

	// OpDelete removes a document by key. The delete acts as a precondition:
	// if the target is absent the whole batch fails with a commit conflict.
	OpDelete
)

// BatchOp is one operation inside an atomic batch commit.
// Construct values via InsertOp and DeleteOp.
type BatchOp struct {
	Kind       BatchOpKind
	Collection string

	// Key is the delete target. Inserts leave it unset so the store assigns
	// fresh identity.
	Key kernel.UUID

	// Fields is the insert payload. Unused for deletes.
	Fields map[string]any
}

// InsertOp builds an insert operation with store-assigned identity.
func InsertOp(collection string, fields map[string]any) BatchOp {
	return BatchOp{
		Kind:       OpInsert,
		Collection: collection,
		Fields:     fields,
	}
}

// InsertWithKeyOp builds an insert operation with an explicit key. Used for
// records whose identity must survive an update, such as menu items; lifecycle
// moves never use it.
func InsertWithKeyOp(collection string, key kernel.UUID, fields map[string]any) BatchOp {
	return BatchOp{
		Kind:       OpInsert,
		Collection: collection,
		Key:        key,
		Fields:     fields,
	}
}

// DeleteOp builds a delete operation for the given document.
func DeleteOp(collection string, key kernel.UUID) BatchOp {
	return BatchOp{
		Kind:       OpDelete,
		Collection: collection,
		Key:        key,
	}
}

// Collection names outside the four order buckets. Bucket collections are
// resolved through order.Bucket.Collection.
const (
	CollectionNotifications = "notifications"
	CollectionMenuItems     = "menuItems"
)

// Subscription is a live query on one collection.
//
// Snapshots delivers the collection's full document set on every change, in
// store-defined arrival order. Delivery is at-least-once per change and rapid
// successive changes may coalesce into one snapshot; consumers must treat
// each snapshot as authoritative and replace, never merge, their local view.
type Subscription interface {
	// Snapshots returns the snapshot channel. The channel is closed by
	// Unsubscribe and never before.
	Snapshots() <-chan []Document

	// Unsubscribe releases the live query. It is safe to call at any time,
	// including immediately after subscribing, and is idempotent. After it
	// returns, no further snapshots are delivered.
	Unsubscribe()
}

// DocumentStore is the capability the lifecycle engine requires from its
// backing store: live-query subscriptions per collection, point reads by key,
// per-collection enumeration, and atomic multi-operation batch commits.
type DocumentStore interface {
	// Subscribe opens a live query on a collection. The current snapshot is
	// delivered first, then one snapshot per change.
	Subscribe(ctx context.Context, collection string) (Subscription, error)

	// Get reads a single document by key.
	// Returns errs.ObjectNotFoundError when the document is absent.
	Get(ctx context.Context, collection string, key kernel.UUID) (Document, error)

	// List enumerates a collection's current documents.
	List(ctx context.Context, collection string) ([]Document, error)

	// CommitBatch applies all operations as a single indivisible unit: either
	// every operation lands or none does. Returns errs.CommitConflictError
	// when a delete target is absent (the batch is not applied), or
	// errs.StoreUnavailableError on transport failure. The store never
	// retries; retry policy belongs to the caller.
	CommitBatch(ctx context.Context, ops []BatchOp) error
}
