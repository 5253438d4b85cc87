package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusHandler func(ctx context.Context, factory commands.OrderUoWFactory, id kernel.OrderID) error

func payHandler(ctx context.Context, factory commands.OrderUoWFactory, id kernel.OrderID) error {
	cmd, err := commands.NewPayOrderCommand(id)
	if err != nil {
		return err
	}
	h := commands.NewPayOrderCommandHandler(factory, discardLogger())
	return h.Handle(ctx, cmd)
}

func approveHandler(ctx context.Context, factory commands.OrderUoWFactory, id kernel.OrderID) error {
	cmd, err := commands.NewApproveOrderCommand(id)
	if err != nil {
		return err
	}
	h := commands.NewApproveOrderCommandHandler(factory, discardLogger())
	return h.Handle(ctx, cmd)
}

func initCancelHandler(ctx context.Context, factory commands.OrderUoWFactory, id kernel.OrderID) error {
	cmd, err := commands.NewInitCancelOrderCommand(id, []string{"restaurant rejected"})
	if err != nil {
		return err
	}
	h := commands.NewInitCancelOrderCommandHandler(factory, discardLogger())
	return h.Handle(ctx, cmd)
}

func cancelHandler(ctx context.Context, factory commands.OrderUoWFactory, id kernel.OrderID) error {
	cmd, err := commands.NewCancelOrderCommand(id, []string{"payment rolled back"})
	if err != nil {
		return err
	}
	h := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	return h.Handle(ctx, cmd)
}

// orderIn returns a pending order driven to status through the domain model.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	switch status {
	case order.Paid:
		require.NoError(t, o.Pay())
	case order.Approved:
		require.NoError(t, o.Pay())
		require.NoError(t, o.Approve())
	case order.Cancelling:
		require.NoError(t, o.Pay())
		require.NoError(t, o.InitCancel(nil))
	}
	return o
}

func TestOrderStatusCommandHandlers_Success(t *testing.T) {
	testCases := []struct {
		name     string
		handler  statusHandler
		from     order.Status
		to       order.Status
		messages []string
	}{
		{"pay", payHandler, order.Pending, order.Paid, nil},
		{"approve", approveHandler, order.Paid, order.Approved, nil},
		{"init_cancel", initCancelHandler, order.Paid, order.Cancelling, []string{"restaurant rejected"}},
		{"cancel_pending", cancelHandler, order.Pending, order.Cancelled, []string{"payment rolled back"}},
		{"cancel_cancelling", cancelHandler, order.Cancelling, order.Cancelled, []string{"payment rolled back"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			o := orderIn(t, tc.from)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				repo.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			// When
			err := tc.handler(ctx, factory, o.ID())

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.to, o.Status())
			assert.Equal(t, tc.messages, o.FailureMessages())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestOrderStatusCommandHandlers_IllegalTransition(t *testing.T) {
	testCases := []struct {
		name    string
		handler statusHandler
		from    order.Status
	}{
		{"approve_pending", approveHandler, order.Pending},
		{"pay_paid", payHandler, order.Paid},
		{"init_cancel_pending", initCancelHandler, order.Pending},
		{"cancel_paid", cancelHandler, order.Paid},
		{"cancel_approved", cancelHandler, order.Approved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			o := orderIn(t, tc.from)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			err := tc.handler(ctx, factory, o.ID())

			require.ErrorIs(t, err, order.ErrInvalidState)
			assert.Equal(t, tc.from, o.Status())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestOrderStatusCommandHandlers_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewOrderID()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := payHandler(ctx, factory, id)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderStatusCommandHandlers_UpdateError(t *testing.T) {
	ctx := t.Context()
	o := orderIn(t, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errors.New("update error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := payHandler(ctx, factory, o.ID())

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestOrderStatusCommands_Constructors(t *testing.T) {
	t.Run("should reject a missing order id", func(t *testing.T) {
		_, payErr := commands.NewPayOrderCommand(kernel.OrderID{})
		_, approveErr := commands.NewApproveOrderCommand(kernel.OrderID{})
		_, initCancelErr := commands.NewInitCancelOrderCommand(kernel.OrderID{}, nil)
		_, cancelErr := commands.NewCancelOrderCommand(kernel.OrderID{}, nil)

		for _, err := range []error{payErr, approveErr, initCancelErr, cancelErr} {
			assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		}
	})

	t.Run("should copy failure messages", func(t *testing.T) {
		messages := []string{"a"}
		cmd, err := commands.NewCancelOrderCommand(kernel.NewOrderID(), messages)
		require.NoError(t, err)

		messages[0] = "changed"

		assert.Equal(t, []string{"a"}, cmd.FailureMessages())
	})

	t.Run("should reject zero value commands", func(t *testing.T) {
		assert.ErrorIs(t, commands.PayOrderCommand{}.Validate(), commands.ErrPayOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ApproveOrderCommand{}.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.InitCancelOrderCommand{}.Validate(), commands.ErrInitCancelOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
