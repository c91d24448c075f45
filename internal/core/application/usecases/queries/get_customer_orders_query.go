package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves one page of customer orders.
//
// Example:
//
//	request, _ := kernel.NewPageRequest(0, 20, kernel.SortOrder{Property: "createTime", Direction: kernel.Desc})
//	page, err := handler.Handle(ctx, NewGetCustomerOrdersQuery(request))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Content), page.TotalElements)
type GetCustomerOrdersQuery struct {
	pageRequest kernel.PageRequest

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(pageRequest kernel.PageRequest) GetCustomerOrdersQuery {
	return GetCustomerOrdersQuery{pageRequest: pageRequest, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) PageRequest() kernel.PageRequest {
	return q.pageRequest
}
