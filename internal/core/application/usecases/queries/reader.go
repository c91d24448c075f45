// Package queries contains read-only operations over customer orders.
// Queries run outside of an explicit unit of work: each one is a single
// statement (or a count plus a page select) against the datastore.
package queries

import (
	"context"

	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
)

// CustomerOrderReader is the read side of ports.CustomerOrderRepository.
type CustomerOrderReader interface {
	Get(ctx context.Context, id int64) (*customerorder.CustomerOrder, error)
	FindAll(ctx context.Context, request kernel.PageRequest) (kernel.Page[*customerorder.CustomerOrder], error)
}
