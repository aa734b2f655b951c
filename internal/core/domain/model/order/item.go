package order

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one line of an order: a menu item name
// and how many of it were ordered. Items are immutable once constructed.
type Item struct {
	name     string
	quantity int

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Parameters:
//   - name: the ordered menu item's display name (must not be empty)
//   - quantity: how many were ordered (must be >= 1)
func NewItem(name string, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		name:          name,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the ordered menu item's display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}
