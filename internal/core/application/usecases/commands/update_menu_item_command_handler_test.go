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
	"canteen/internal/pkg/errs"
)

func Test_UpdateMenuItemCommandHandler_AppliesNewAttributes(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	stored := newBurgerItem(t, itemID)

	repo := &MockMenuItemRepository{}
	repo.On("Get", ctx, itemID).Return(stored, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(item *menu.MenuItem) bool {
		return itemID.IsEqual(item.ID()) &&
			item.Name() == "Cheeseburger" &&
			item.Price() == 6.00 &&
			item.Stock() == 8
	})).Return(nil)

	handler := commands.NewUpdateMenuItemCommandHandler(repo)
	cmd, err := commands.NewUpdateMenuItemCommand(itemID, "Cheeseburger", 6.00, 8, "With cheddar")
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func Test_UpdateMenuItemCommandHandler_UnknownItem(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	repo := &MockMenuItemRepository{}
	repo.On("Get", ctx, itemID).
		Return(nil, errs.NewObjectNotFoundError("menuItems", itemID.String()))

	handler := commands.NewUpdateMenuItemCommandHandler(repo)
	cmd, err := commands.NewUpdateMenuItemCommand(itemID, "Cheeseburger", 6.00, 8, "")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func Test_UpdateMenuItemCommand_DefaultStructFailsValidation(t *testing.T) {
	var cmd commands.UpdateMenuItemCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateMenuItemCommandIsNotConstructed)
}
