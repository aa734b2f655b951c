package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

func Test_CancelOrderCommandHandler_MovesPreparedOrder(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	prepared := newPreparedOrder(t, orderID)

	repo := &MockOrderRepository{}
	repo.On("Get", ctx, order.BucketPrepared, orderID).Return(prepared, nil)
	repo.On("CommitTransition", ctx, mock.MatchedBy(func(tr *order.Transition) bool {
		return tr.Kind() == order.TransitionCancel &&
			tr.From() == order.BucketPrepared &&
			tr.To() == order.BucketCanceled &&
			tr.Moved().Status() == order.Canceled
	})).Return(nil)

	handler := commands.NewCancelOrderCommandHandler(repo)
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func Test_CancelOrderCommandHandler_PendingOrderCannotBeCanceled(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	// Cancel applies to prepared orders only; a pending order is simply not
	// found in the prepared bucket.
	repo := &MockOrderRepository{}
	repo.On("Get", ctx, order.BucketPrepared, orderID).
		Return(nil, errs.NewObjectNotFoundError("preparedOrders", orderID.String()))

	handler := commands.NewCancelOrderCommandHandler(repo)
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	var notFound *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFound)
	repo.AssertNotCalled(t, "CommitTransition", mock.Anything, mock.Anything)
}

func Test_CancelOrderCommandHandler_PropagatesCommitConflict(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	prepared := newPreparedOrder(t, orderID)
	conflict := errs.NewCommitConflictError("preparedOrders", orderID.String())

	repo := &MockOrderRepository{}
	repo.On("Get", ctx, order.BucketPrepared, orderID).Return(prepared, nil)
	repo.On("CommitTransition", ctx, mock.Anything).Return(conflict)

	handler := commands.NewCancelOrderCommandHandler(repo)
	cmd, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	var got *errs.CommitConflictError
	assert.ErrorAs(t, err, &got)
}
