package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
)

func Test_NewCancelOrderCommand_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, orderID.IsEqual(cmd.OrderID()))
}

func Test_NewCancelOrderCommand_RejectsInvalidID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})

	assert.Error(t, err)
}

func Test_CancelOrderCommand_DefaultStructFailsValidation(t *testing.T) {
	var cmd commands.CancelOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
