package commands

import (
	"context"
)

// DeleteCustomerOrderCommandHandler deletes customer orders without checking
// that they exist first.
type DeleteCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

func NewDeleteCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) DeleteCustomerOrderCommandHandler {
	return DeleteCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order in its own transaction.
func (h *DeleteCustomerOrderCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CustomerOrderRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
