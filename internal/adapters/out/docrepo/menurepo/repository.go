// Package menurepo persists menu items in the document store. Unlike the
// order buckets, menu item keys are stable across updates: an update is a
// delete plus a keyed re-insert in one batch.
package menurepo

import (
	"context"
	"errors"

	"canteen/internal/adapters/out/docrepo/docfield"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

const (
	fieldName        = "name"
	fieldPrice       = "price"
	fieldStock       = "stock"
	fieldDescription = "description"
	fieldCreatedAt   = "createdAt"
)

var _ ports.MenuItemRepository = (*Repository)(nil)

// Repository implements ports.MenuItemRepository on top of a DocumentStore.
type Repository struct {
	store ports.DocumentStore
}

// NewRepository creates the repository. The store is required.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	return &Repository{store: store}, nil
}

func (r *Repository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	return r.store.CommitBatch(ctx, []ports.BatchOp{
		ports.InsertWithKeyOp(ports.CollectionMenuItems, item.ID(), toFields(item)),
	})
}

func (r *Repository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	// The delete precondition doubles as the existence check: if the item is
	// gone the batch is rejected and nothing is written.
	err := r.store.CommitBatch(ctx, []ports.BatchOp{
		ports.DeleteOp(ports.CollectionMenuItems, item.ID()),
		ports.InsertWithKeyOp(ports.CollectionMenuItems, item.ID(), toFields(item)),
	})

	var conflict *errs.CommitConflictError
	if errors.As(err, &conflict) {
		return errs.NewObjectNotFoundError(ports.CollectionMenuItems, item.ID().String())
	}
	return err
}

func (r *Repository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.store.CommitBatch(ctx, []ports.BatchOp{
		ports.DeleteOp(ports.CollectionMenuItems, id),
	})

	var conflict *errs.CommitConflictError
	if errors.As(err, &conflict) {
		return errs.NewObjectNotFoundError(ports.CollectionMenuItems, id.String())
	}
	return err
}

func (r *Repository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, ports.CollectionMenuItems, id)
	if err != nil {
		return nil, err
	}

	return toDomain(doc)
}

func (r *Repository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	docs, err := r.store.List(ctx, ports.CollectionMenuItems)
	if err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(docs))
	for _, doc := range docs {
		item, mapErr := toDomain(doc)
		if mapErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(ports.CollectionMenuItems, mapErr)
		}
		items = append(items, item)
	}

	return items, nil
}

func toFields(item *menu.MenuItem) map[string]any {
	return map[string]any{
		fieldName:        item.Name(),
		fieldPrice:       item.Price(),
		fieldStock:       item.Stock(),
		fieldDescription: item.Description(),
		fieldCreatedAt:   docfield.FormatTime(item.CreatedAt()),
	}
}

func toDomain(doc ports.Document) (*menu.MenuItem, error) {
	name, err := docfield.String(doc.Fields, fieldName)
	if err != nil {
		return nil, err
	}
	price, err := docfield.Float(doc.Fields, fieldPrice)
	if err != nil {
		return nil, err
	}
	stock, err := docfield.Int(doc.Fields, fieldStock)
	if err != nil {
		return nil, err
	}
	description, _ := docfield.String(doc.Fields, fieldDescription)
	createdAt, err := docfield.Time(doc.Fields, fieldCreatedAt)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(doc.Key, name, price, stock, description, createdAt)
}
