// Package memstore provides an in-memory implementation of the DocumentStore
// port, used for tests and single-process deployments. It honors the full
// store contract: atomic batch commits with delete preconditions, point reads,
// and coalescing live-query subscriptions per collection.
package memstore

import (
	"context"
	"sync"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// Compile-time contract assertion.
var _ ports.DocumentStore = (*Store)(nil)

// Store is an in-memory document store. All state is guarded by one mutex;
// batch commits are trivially atomic because nothing else can observe the
// store mid-commit.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collectionState
	subscribers map[string]map[*subscription]struct{}
}

// collectionState keeps documents plus their arrival order, which defines
// snapshot and enumeration order.
type collectionState struct {
	docs  map[string]map[string]any
	order []string
}

// NewStore creates an empty in-memory document store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]*collectionState),
		subscribers: make(map[string]map[*subscription]struct{}),
	}
}

// Subscribe opens a live query on a collection. The current snapshot is
// delivered immediately; afterwards one snapshot per committed change, with
// rapid successive changes coalescing into the newest snapshot.
func (s *Store) Subscribe(ctx context.Context, collection string) (ports.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("subscribe "+collection, err)
	}
	if collection == "" {
		return nil, errs.NewValueIsRequiredError("collection")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{
		store:      s,
		collection: collection,
		ch:         make(chan []ports.Document, 1),
	}

	if s.subscribers[collection] == nil {
		s.subscribers[collection] = make(map[*subscription]struct{})
	}
	s.subscribers[collection][sub] = struct{}{}

	sub.publish(s.snapshotLocked(collection))
	return sub, nil
}

// Get reads a single document by key.
func (s *Store) Get(ctx context.Context, collection string, key kernel.UUID) (ports.Document, error) {
	if err := ctx.Err(); err != nil {
		return ports.Document{}, errs.NewStoreUnavailableError("get "+collection, err)
	}
	if err := key.Validate(); err != nil {
		return ports.Document{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.collections[collection]
	if !ok {
		return ports.Document{}, errs.NewObjectNotFoundError(collection, key.String())
	}
	fields, ok := state.docs[key.String()]
	if !ok {
		return ports.Document{}, errs.NewObjectNotFoundError(collection, key.String())
	}

	return ports.Document{Key: key, Fields: cloneFields(fields)}, nil
}

// List enumerates a collection's documents in arrival order.
func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreUnavailableError("list "+collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(collection), nil
}

// CommitBatch applies all operations atomically. Delete targets are verified
// first: if any is absent the batch is rejected with a commit conflict and no
// operation is applied. Subscribers of every touched collection receive a
// fresh snapshot after the batch lands.
func (s *Store) CommitBatch(ctx context.Context, ops []ports.BatchOp) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStoreUnavailableError("commit batch", err)
	}
	if len(ops) == 0 {
		return errs.NewValueIsRequiredError("ops")
	}

	for _, op := range ops {
		if err := validateOp(op); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Delete preconditions: all targets must still exist.
	for _, op := range ops {
		if op.Kind != ports.OpDelete {
			continue
		}
		state, ok := s.collections[op.Collection]
		if !ok {
			return errs.NewCommitConflictError(op.Collection, op.Key.String())
		}
		if _, ok = state.docs[op.Key.String()]; !ok {
			return errs.NewCommitConflictError(op.Collection, op.Key.String())
		}
	}

	touched := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		state := s.collectionLocked(op.Collection)
		switch op.Kind {
		case ports.OpInsert:
			key := op.Key
			if key.Validate() != nil {
				key = kernel.NewUUID()
			}
			if _, exists := state.docs[key.String()]; !exists {
				state.order = append(state.order, key.String())
			}
			state.docs[key.String()] = cloneFields(op.Fields)
		case ports.OpDelete:
			delete(state.docs, op.Key.String())
			state.order = removeKey(state.order, op.Key.String())
		}
		touched[op.Collection] = struct{}{}
	}

	for collection := range touched {
		snapshot := s.snapshotLocked(collection)
		for sub := range s.subscribers[collection] {
			sub.publish(snapshot)
		}
	}

	return nil
}

func validateOp(op ports.BatchOp) error {
	if op.Collection == "" {
		return errs.NewValueIsRequiredError("collection")
	}
	switch op.Kind {
	case ports.OpInsert:
		return nil
	case ports.OpDelete:
		return op.Key.Validate()
	default:
		return errs.NewValueIsInvalidError("batch op kind")
	}
}

func (s *Store) collectionLocked(collection string) *collectionState {
	state, ok := s.collections[collection]
	if !ok {
		state = &collectionState{docs: make(map[string]map[string]any)}
		s.collections[collection] = state
	}
	return state
}

func (s *Store) snapshotLocked(collection string) []ports.Document {
	state, ok := s.collections[collection]
	if !ok {
		return []ports.Document{}
	}

	docs := make([]ports.Document, 0, len(state.order))
	for _, key := range state.order {
		fields, ok := state.docs[key]
		if !ok {
			continue
		}
		id, err := kernel.UUIDFromString(key)
		if err != nil {
			continue
		}
		docs = append(docs, ports.Document{Key: id, Fields: cloneFields(fields)})
	}
	return docs
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

// cloneFields deep-copies a field map so callers can never mutate store
// state through a returned or committed document.
func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	cloned := make(map[string]any, len(fields))
	for k, v := range fields {
		cloned[k] = cloneValue(v)
	}
	return cloned
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneFields(value)
	case []any:
		cloned := make([]any, len(value))
		for i, item := range value {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return value
	}
}

// subscription is one live query. Its channel is buffered with capacity one:
// a pending undelivered snapshot is replaced by a newer one, giving the
// at-least-once, coalescing delivery the port contract allows.
type subscription struct {
	store      *Store
	collection string
	ch         chan []ports.Document
	closed     bool
}

// Snapshots returns the snapshot channel. Closed by Unsubscribe.
func (s *subscription) Snapshots() <-chan []ports.Document {
	return s.ch
}

// Unsubscribe releases the live query. Idempotent and safe to call at any
// time; after it returns no further snapshots are delivered, including any
// snapshot still buffered.
func (s *subscription) Unsubscribe() {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if subs, ok := s.store.subscribers[s.collection]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(s.store.subscribers, s.collection)
		}
	}

	// Drain the undelivered snapshot, if any, so readers only observe the
	// closed channel.
	select {
	case <-s.ch:
	default:
	}
	close(s.ch)
}

// publish is called with the store mutex held.
func (s *subscription) publish(snapshot []ports.Document) {
	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- snapshot:
	default:
	}
}
