package ports

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
)

// CustomerOrderRepository defines the persistence contract for customer orders.
// Implementations must be safe for concurrent use; isolation between requests
// comes from the transaction the repository is bound to.
type CustomerOrderRepository interface {
	// Save inserts an order without identity and assigns one, or replaces every
	// field of the order with the given identity. Replacing an unknown identity
	// fails with errs.ObjectNotFoundError. Datastore faults are errs.PersistenceError.
	Save(ctx context.Context, aggregate *customerorder.CustomerOrder) (*customerorder.CustomerOrder, error)

	// Get retrieves an order by identifier. Absence is errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*customerorder.CustomerOrder, error)

	// FindAll returns the requested page together with the total number of orders.
	FindAll(ctx context.Context, request kernel.PageRequest) (kernel.Page[*customerorder.CustomerOrder], error)

	// Delete removes the order if it exists. Deleting an absent order is not an error.
	Delete(ctx context.Context, id int64) error
}
