// Package orderrepo maps the four order buckets onto a schema-less document
// store. Lifecycle transitions are committed as one atomic batch so that the
// moved copy, the source delete and the notification land together or not at
// all.
package orderrepo

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/notification"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Repository implements ports.OrderRepository on top of a DocumentStore.
type Repository struct {
	store  ports.DocumentStore
	logger *slog.Logger
	clock  func() time.Time
}

// NewRepository creates the repository. Both dependencies are required.
func NewRepository(store ports.DocumentStore, logger *slog.Logger) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Repository{
		store:  store,
		logger: logger.With("component", "orderrepo"),
		clock:  time.Now,
	}, nil
}

func (r *Repository) Get(ctx context.Context, bucket order.Bucket, id kernel.UUID) (*order.Order, error) {
	if err := bucket.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, bucket.Collection(), id)
	if err != nil {
		return nil, err
	}

	return toDomain(doc, bucket)
}

func (r *Repository) GetAll(ctx context.Context, bucket order.Bucket) ([]*order.Order, error) {
	if err := bucket.Validate(); err != nil {
		return nil, err
	}

	docs, err := r.store.List(ctx, bucket.Collection())
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(docs))
	for _, doc := range docs {
		o, mapErr := toDomain(doc, bucket)
		if mapErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(bucket.Collection(), mapErr)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *Repository) Observe(ctx context.Context, bucket order.Bucket) (ports.OrderStream, error) {
	if err := bucket.Validate(); err != nil {
		return nil, err
	}

	sub, err := r.store.Subscribe(ctx, bucket.Collection())
	if err != nil {
		return nil, err
	}

	stream := &orderStream{
		sub:    sub,
		bucket: bucket,
		logger: r.logger,
		orders: make(chan []*order.Order, 1),
	}
	go stream.run()

	return stream, nil
}

func (r *Repository) CommitTransition(ctx context.Context, transition *order.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	note, err := notification.ForTransition(transition, r.clock())
	if err != nil {
		return err
	}

	moved := transition.Moved()
	ops := []ports.BatchOp{
		ports.InsertOp(transition.To().Collection(), toFields(moved)),
		ports.DeleteOp(transition.From().Collection(), transition.SourceID()),
		ports.InsertOp(ports.CollectionNotifications, notificationFields(
			note.UserID(), note.Title(), note.Message(), note.OrderNumber(),
			note.Timestamp(), string(note.Status()),
		)),
	}

	return r.store.CommitBatch(ctx, ops)
}

// orderStream adapts a raw document subscription into a typed order stream.
// Documents that fail to map are dropped from the snapshot; a single bad
// document must not blind the whole bucket.
type orderStream struct {
	sub    ports.Subscription
	bucket order.Bucket
	logger *slog.Logger
	orders chan []*order.Order
}

func (s *orderStream) Orders() <-chan []*order.Order {
	return s.orders
}

func (s *orderStream) Unsubscribe() {
	s.sub.Unsubscribe()
}

func (s *orderStream) run() {
	for docs := range s.sub.Snapshots() {
		orders := make([]*order.Order, 0, len(docs))
		for _, doc := range docs {
			o, err := toDomain(doc, s.bucket)
			if err != nil {
				s.logger.Warn("skipping unmappable document",
					"collection", s.bucket.Collection(),
					"key", doc.Key.String(),
					"error", err)
				continue
			}
			orders = append(orders, o)
		}

		// Coalesce the same way the store does: replace a pending snapshot
		// instead of blocking on a slow consumer.
		select {
		case <-s.orders:
		default:
		}
		select {
		case s.orders <- orders:
		default:
		}
	}

	select {
	case <-s.orders:
	default:
	}
	close(s.orders)
}
