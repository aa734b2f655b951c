package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"canteen/internal/core/application/usecases/commands"
)

func Test_NewCompleteOrderByScanCommand_AcceptsAnyPayload(t *testing.T) {
	for _, payload := range []string{"", "not-a-key", "c56a4180-65aa-42ec-a945-5fd21dec0538"} {
		cmd := commands.NewCompleteOrderByScanCommand(payload)

		assert.NoError(t, cmd.Validate())
		assert.Equal(t, payload, cmd.Payload())
	}
}

func Test_CompleteOrderByScanCommand_DefaultStructFailsValidation(t *testing.T) {
	var cmd commands.CompleteOrderByScanCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderByScanCommandIsNotConstructed)
}
