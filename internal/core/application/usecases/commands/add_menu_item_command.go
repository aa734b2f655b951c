package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrMenuItemPriceIsInvalid = errors.New("menu item price must not be negative")
	ErrMenuItemStockIsInvalid = errors.New("menu item stock must not be negative")
)

// AddMenuItemCommand represents a request to add a dish to the menu.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewAddMenuItemCommand(itemID, "Burger", 5.50, 10, "Beef burger")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add menu item: %w", err)
//	}
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       float64
	stock       int
	description string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item. Validates that
// the item ID is valid, the name is not empty, and price and stock are not
// negative.
func NewAddMenuItemCommand(
	itemID kernel.UUID,
	name string,
	price float64,
	stock int,
	description string,
) (AddMenuItemCommand, error) {
	command := AddMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier the new item will be stored under.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the displayed dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

// Stock returns the number of portions available.
func (c AddMenuItemCommand) Stock() int {
	return c.stock
}

// Description returns the optional dish description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrMenuItemPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrMenuItemStockIsInvalid
	}
	c.stock = stock
	return nil
}
