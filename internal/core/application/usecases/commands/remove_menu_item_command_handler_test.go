package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

func Test_RemoveMenuItemCommandHandler_RemovesItem(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	repo := &MockMenuItemRepository{}
	repo.On("Remove", ctx, itemID).Return(nil)

	handler := commands.NewRemoveMenuItemCommandHandler(repo)
	cmd, err := commands.NewRemoveMenuItemCommand(itemID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func Test_RemoveMenuItemCommandHandler_UnknownItem(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()

	repo := &MockMenuItemRepository{}
	repo.On("Remove", ctx, itemID).
		Return(errs.NewObjectNotFoundError("menuItems", itemID.String()))

	handler := commands.NewRemoveMenuItemCommandHandler(repo)
	cmd, err := commands.NewRemoveMenuItemCommand(itemID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_RemoveMenuItemCommand_DefaultStructFailsValidation(t *testing.T) {
	var cmd commands.RemoveMenuItemCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrRemoveMenuItemCommandIsNotConstructed)
	repo := &MockMenuItemRepository{}
	handler := commands.NewRemoveMenuItemCommandHandler(repo)
	assert.ErrorIs(t, handler.Handle(context.Background(), commands.RemoveMenuItemCommand{}),
		commands.ErrRemoveMenuItemCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
