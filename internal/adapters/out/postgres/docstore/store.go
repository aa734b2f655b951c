// Package docstore implements the DocumentStore port on PostgreSQL. Documents
// live in a single jsonb-backed table partitioned by a collection column;
// batches run inside one database transaction so the atomicity guarantee is
// carried by the database itself.
//
// PostgreSQL has no native live queries, so subscriptions are fed by
// refreshes: after every local commit the touched collections are re-read and
// pushed to subscribers, and a periodic job calls Refresh to pick up writes
// made by other processes.
package docstore

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"gorm.io/gorm"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

var _ ports.DocumentStore = (*Store)(nil)

// Store is a PostgreSQL-backed document store.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[string]map[*subscription]struct{}
	published   map[string]string
}

// NewStore creates the store. Both dependencies are required.
func NewStore(db *gorm.DB, logger *slog.Logger) (*Store, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Store{
		db:          db,
		logger:      logger.With("component", "docstore"),
		subscribers: make(map[string]map[*subscription]struct{}),
		published:   make(map[string]string),
	}, nil
}

// Migrate creates or updates the documents table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&DocumentDTO{})
}

// Subscribe opens a live query on a collection. The current snapshot is
// loaded and delivered immediately; afterwards snapshots arrive on refresh.
func (s *Store) Subscribe(ctx context.Context, collection string) (ports.Subscription, error) {
	if collection == "" {
		return nil, errs.NewValueIsRequiredError("collection")
	}

	snapshot, print, err := s.list(ctx, collection)
	if err != nil {
		return nil, err
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

	// A change may have landed between the last refresh and this read; make
	// sure existing subscribers are not left behind the recorded state.
	prev, hadPrev := s.published[collection]
	s.published[collection] = print
	if hadPrev && prev != print {
		for other := range s.subscribers[collection] {
			if other != sub {
				other.publish(snapshot)
			}
		}
	}

	sub.publish(snapshot)
	return sub, nil
}

// Get reads a single document by key.
func (s *Store) Get(ctx context.Context, collection string, key kernel.UUID) (ports.Document, error) {
	if err := key.Validate(); err != nil {
		return ports.Document{}, err
	}

	var dto DocumentDTO
	err := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", key.Bytes(), collection).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Document{}, errs.NewObjectNotFoundError(collection, key.String())
	}
	if err != nil {
		return ports.Document{}, errs.NewStoreUnavailableError("get "+collection, err)
	}

	return toDocument(dto)
}

// List enumerates a collection's documents in arrival order.
func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	docs, _, err := s.list(ctx, collection)
	return docs, err
}

func (s *Store) list(ctx context.Context, collection string) ([]ports.Document, string, error) {
	var dtos []DocumentDTO
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, "", errs.NewStoreUnavailableError("list "+collection, err)
	}

	docs := make([]ports.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, mapErr := toDocument(dto)
		if mapErr != nil {
			return nil, "", mapErr
		}
		docs = append(docs, doc)
	}
	return docs, fingerprint(dtos), nil
}

// CommitBatch applies all operations in one database transaction. Deletes
// act as preconditions: a missing delete target aborts the transaction with
// a commit conflict and nothing is applied. On success the touched
// collections are refreshed so local subscribers see the change immediately.
func (s *Store) CommitBatch(ctx context.Context, ops []ports.BatchOp) error {
	if len(ops) == 0 {
		return errs.NewValueIsRequiredError("ops")
	}
	for _, op := range ops {
		if err := validateOp(op); err != nil {
			return err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if op.Kind != ports.OpDelete {
				continue
			}
			result := tx.Where("id = ? AND collection = ?", op.Key.Bytes(), op.Collection).
				Delete(&DocumentDTO{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errs.NewCommitConflictError(op.Collection, op.Key.String())
			}
		}

		for _, op := range ops {
			if op.Kind != ports.OpInsert {
				continue
			}
			key := op.Key
			if key.Validate() != nil {
				key = kernel.NewUUID()
			}
			dto, mapErr := fromFields(op.Collection, key, op.Fields)
			if mapErr != nil {
				return mapErr
			}
			if createErr := tx.Create(&dto).Error; createErr != nil {
				return createErr
			}
		}
		return nil
	})

	var conflict *errs.CommitConflictError
	var invalid *errs.ValueIsInvalidError
	switch {
	case err == nil:
	case errors.As(err, &conflict), errors.As(err, &invalid):
		return err
	default:
		return errs.NewStoreUnavailableError("commit batch", err)
	}

	touched := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		touched[op.Collection] = struct{}{}
	}
	s.refreshCollections(ctx, touched)
	return nil
}

// Refresh re-reads every subscribed collection and publishes snapshots that
// changed since the last publication. Called periodically to surface writes
// from other processes.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	subscribed := make(map[string]struct{}, len(s.subscribers))
	for collection, subs := range s.subscribers {
		if len(subs) > 0 {
			subscribed[collection] = struct{}{}
		}
	}
	s.mu.Unlock()

	s.refreshCollections(ctx, subscribed)
	return ctx.Err()
}

func (s *Store) refreshCollections(ctx context.Context, collections map[string]struct{}) {
	for collection := range collections {
		snapshot, print, err := s.list(ctx, collection)
		if err != nil {
			s.logger.Warn("refresh failed", "collection", collection, "error", err)
			continue
		}

		s.mu.Lock()
		subs := s.subscribers[collection]
		if len(subs) == 0 || s.published[collection] == print {
			s.mu.Unlock()
			continue
		}
		s.published[collection] = print
		for sub := range subs {
			sub.publish(snapshot)
		}
		s.mu.Unlock()
	}
}

func (s *Store) unsubscribe(sub *subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subscribers[sub.collection]
	if subs == nil {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(s.subscribers, sub.collection)
		delete(s.published, sub.collection)
	}
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

// fingerprint summarizes a snapshot for change detection. The seq column is
// assigned on every insert, so a keyed re-insert with new content yields a
// new fingerprint even though the key set is unchanged.
func fingerprint(dtos []DocumentDTO) string {
	var b []byte
	for _, dto := range dtos {
		b = append(b, dto.ID.String()...)
		b = append(b, ':')
		b = strconv.AppendInt(b, dto.Seq, 10)
		b = append(b, ';')
	}
	return string(b)
}

// subscription is one live query. The channel is buffered with capacity one;
// a pending undelivered snapshot is replaced by a newer one so consumers
// always see the latest state.
type subscription struct {
	store      *Store
	collection string
	ch         chan []ports.Document

	closed bool
}

func (s *subscription) Snapshots() <-chan []ports.Document {
	return s.ch
}

// Unsubscribe removes the subscription and closes the channel. Idempotent.
func (s *subscription) Unsubscribe() {
	s.store.mu.Lock()
	if s.closed {
		s.store.mu.Unlock()
		return
	}
	s.closed = true
	s.store.mu.Unlock()

	s.store.unsubscribe(s)

	select {
	case <-s.ch:
	default:
	}
	close(s.ch)
}

// publish is called with store.mu held.
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
