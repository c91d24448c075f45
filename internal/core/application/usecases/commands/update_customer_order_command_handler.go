package commands

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
)

// UpdateCustomerOrderCommandHandler overwrites existing customer orders.
type UpdateCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewUpdateCustomerOrderCommandHandler creates a handler for full-replace updates.
func NewUpdateCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) UpdateCustomerOrderCommandHandler {
	return UpdateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the stored order and returns what was persisted.
// An unknown id surfaces as errs.ObjectNotFoundError from the repository.
func (h *UpdateCustomerOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerOrderCommand,
) (*customerorder.CustomerOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	replacement, err := customerorder.RestoreCustomerOrder(cmd.ID(), cmd.CustomerID(), cmd.CreateTime())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := uow.CustomerOrderRepository().Save(ctx, replacement)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
