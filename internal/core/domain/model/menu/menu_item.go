// Package menu implements the menu item aggregate. Menu items are plain CRUD
// records with no transition logic; they never move between collections.
package menu

import (
	"errors"
	"fmt"
	"math"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory methods.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")

// MenuItem represents one sellable item on the canteen menu.
type MenuItem struct {
	id          kernel.UUID
	name        string
	price       float64
	stock       int
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewMenuItem creates a validated menu item.
//
// Parameters:
//   - id: store-assigned document key (must be valid)
//   - name: display name (required)
//   - price: unit price (must not be negative)
//   - stock: units in stock (must not be negative)
//   - description: optional free text
//   - createdAt: creation time (must not be zero)
func NewMenuItem(
	id kernel.UUID,
	name string,
	price float64,
	stock int,
	description string,
	createdAt time.Time,
) (*MenuItem, error) {
	m := &MenuItem{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setStock(stock),
		m.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	name string,
	price float64,
	stock int,
	description string,
	createdAt time.Time,
) (*MenuItem, error) {
	return NewMenuItem(id, name, price, stock, description, createdAt)
}

// Validate ensures the MenuItem was created through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two menu items by their document keys.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's document key.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Stock returns the units in stock.
func (m *MenuItem) Stock() int {
	return m.stock
}

// Description returns the optional free-text description.
func (m *MenuItem) Description() string {
	return m.description
}

// CreatedAt returns the creation time.
func (m *MenuItem) CreatedAt() time.Time {
	return m.createdAt
}

// Update replaces the mutable fields of the menu item after validating them.
// Identity and creation time never change.
func (m *MenuItem) Update(name string, price float64, stock int, description string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		m.setName(name),
		m.setPrice(price),
		m.setStock(stock),
	); err != nil {
		return err
	}

	m.description = description
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt)
	}
	m.stock = stock
	return nil
}

func (m *MenuItem) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	m.createdAt = createdAt
	return nil
}
