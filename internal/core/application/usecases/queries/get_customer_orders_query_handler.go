package queries

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
)

// GetCustomerOrdersQueryHandler pages through customer orders.
type GetCustomerOrdersQueryHandler struct {
	reader CustomerOrderReader
}

func NewGetCustomerOrdersQueryHandler(reader CustomerOrderReader) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{reader: reader}
}

// Handle returns the requested page with the total element count.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (kernel.Page[*customerorder.CustomerOrder], error) {
	if err := query.Validate(); err != nil {
		return kernel.Page[*customerorder.CustomerOrder]{}, err
	}

	return h.reader.FindAll(ctx, query.PageRequest())
}
