package queries

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
)

// GetCustomerOrderQueryHandler looks up one customer order.
type GetCustomerOrderQueryHandler struct {
	reader CustomerOrderReader
}

func NewGetCustomerOrderQueryHandler(reader CustomerOrderReader) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{reader: reader}
}

// Handle returns the order or errs.ObjectNotFoundError when it does not exist.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (*customerorder.CustomerOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx, query.ID())
}
