package commands

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
)

// CreateCustomerOrderCommandHandler persists new customer orders.
//
// Example:
//
//	handler := NewCreateCustomerOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateCustomerOrderCommand("AAAAA", nil)
//
//	saved, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("customer order creation failed: %w", err)
//	}
//	fmt.Println(saved.ID())
type CreateCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewCreateCustomerOrderCommandHandler creates a handler for order creation operations.
func NewCreateCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) CreateCustomerOrderCommandHandler {
	return CreateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves the order in its own transaction and returns it with the
// identifier assigned by the datastore.
func (h *CreateCustomerOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerOrderCommand,
) (*customerorder.CustomerOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	candidate, err := customerorder.NewCustomerOrder(cmd.CustomerID(), cmd.CreateTime())
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

	saved, err := uow.CustomerOrderRepository().Save(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
