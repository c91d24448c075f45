package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
	"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
)

// GetCustomerOrderQuery retrieves a single customer order by id.
//
// Example:
//
//	query := NewGetCustomerOrderQuery(42)
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond 404
//	}
type GetCustomerOrderQuery struct {
	id int64

	guard guard.ConstructorGuard
}

func NewGetCustomerOrderQuery(id int64) GetCustomerOrderQuery {
	return GetCustomerOrderQuery{id: id, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

func (q GetCustomerOrderQuery) ID() int64 {
	return q.id
}
