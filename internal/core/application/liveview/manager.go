// Package liveview maintains materialized in-memory views of the four order
// buckets, fed by the repository's live streams. Queries read the current
// view instead of hitting the store; observers get a callback per applied
// snapshot.
package liveview

import (
	"context"
	"log/slog"
	"sync"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// Observer is notified after a bucket's view has been replaced. The snapshot
// is the bucket's full new content; observers must not retain or mutate it
// beyond the call.
type Observer func(bucket order.Bucket, orders []*order.Order)

// Manager owns one live stream per bucket and the views they feed.
//
// Start and Stop are idempotent. After Stop returns, no observer is called
// again. Each delivered snapshot replaces the bucket's view wholesale;
// views are never merged.
type Manager struct {
	repo   ports.OrderRepository
	logger *slog.Logger

	mu        sync.Mutex
	started   bool
	streams   map[order.Bucket]ports.OrderStream
	views     map[order.Bucket][]*order.Order
	observers map[int]Observer
	nextID    int

	wg sync.WaitGroup
}

// NewManager creates the manager. Both dependencies are required.
func NewManager(repo ports.OrderRepository, logger *slog.Logger) (*Manager, error) {
	if repo == nil {
		return nil, errs.NewValueIsRequiredError("repo")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Manager{
		repo:      repo,
		logger:    logger.With("component", "liveview"),
		streams:   make(map[order.Bucket]ports.OrderStream),
		views:     make(map[order.Bucket][]*order.Order),
		observers: make(map[int]Observer),
	}, nil
}

// Start opens a live stream per bucket. Calling Start on a running manager
// is a no-op.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return nil
	}

	for _, bucket := range order.Buckets() {
		stream, err := m.repo.Observe(ctx, bucket)
		if err != nil {
			for _, opened := range m.streams {
				opened.Unsubscribe()
			}
			clear(m.streams)
			return err
		}
		m.streams[bucket] = stream
	}

	for bucket, stream := range m.streams {
		m.wg.Add(1)
		go m.run(bucket, stream)
	}

	m.started = true
	m.logger.Info("live views started", "buckets", len(m.streams))
	return nil
}

// Stop closes all streams and waits for in-flight snapshot deliveries to
// finish. After Stop returns no observer is called again. Idempotent.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	streams := make([]ports.OrderStream, 0, len(m.streams))
	for _, stream := range m.streams {
		streams = append(streams, stream)
	}
	clear(m.streams)
	m.mu.Unlock()

	for _, stream := range streams {
		stream.Unsubscribe()
	}
	m.wg.Wait()
	m.logger.Info("live views stopped")
}

// Orders returns the bucket's current view. The returned slice is a copy and
// safe to retain.
func (m *Manager) Orders(bucket order.Bucket) []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := m.views[bucket]
	out := make([]*order.Order, len(view))
	copy(out, view)
	return out
}

// Register adds an observer and returns its unregister function. The
// unregister function is idempotent.
func (m *Manager) Register(observer Observer) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = observer

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

func (m *Manager) run(bucket order.Bucket, stream ports.OrderStream) {
	defer m.wg.Done()

	for snapshot := range stream.Orders() {
		m.apply(bucket, snapshot)
	}
}

func (m *Manager) apply(bucket order.Bucket, snapshot []*order.Order) {
	m.mu.Lock()
	m.views[bucket] = snapshot
	observers := make([]Observer, 0, len(m.observers))
	for _, observer := range m.observers {
		observers = append(observers, observer)
	}
	m.mu.Unlock()

	// Observers run without the lock so they may call back into the manager.
	for _, observer := range observers {
		observer(bucket, snapshot)
	}
}
