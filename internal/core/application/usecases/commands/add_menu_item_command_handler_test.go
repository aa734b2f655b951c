package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

func Test_AddMenuItemCommandHandler_PersistsItem(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	repo := &MockMenuItemRepository{}
	repo.On("Add", ctx, mock.MatchedBy(func(item *menu.MenuItem) bool {
		return itemID.IsEqual(item.ID()) &&
			item.Name() == "Burger" &&
			item.Price() == 5.50 &&
			item.Stock() == 10 &&
			!item.CreatedAt().IsZero()
	})).Return(nil)

	handler := commands.NewAddMenuItemCommandHandler(repo)
	cmd, err := commands.NewAddMenuItemCommand(itemID, "Burger", 5.50, 10, "Beef burger")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func Test_AddMenuItemCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	repo := &MockMenuItemRepository{}
	handler := commands.NewAddMenuItemCommandHandler(repo)

	err := handler.Handle(context.Background(), commands.AddMenuItemCommand{})

	assert.ErrorIs(t, err, commands.ErrAddMenuItemCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
