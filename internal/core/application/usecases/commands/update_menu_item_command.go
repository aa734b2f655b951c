package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to replace a menu item's
// attributes. The full new state is supplied; partial updates are not
// expressible.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       float64
	stock       int
	description string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item. The same
// validation rules as NewAddMenuItemCommand apply.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name string,
	price float64,
	stock int,
	description string,
) (UpdateMenuItemCommand, error) {
	command := UpdateMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the key of the item to update.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the new price.
func (c UpdateMenuItemCommand) Price() float64 {
	return c.price
}

// Stock returns the new portion count.
func (c UpdateMenuItemCommand) Stock() int {
	return c.stock
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrMenuItemPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrMenuItemStockIsInvalid
	}
	c.stock = stock
	return nil
}
