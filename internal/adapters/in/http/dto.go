package http

import (
	"time"

	"shop/internal/core/domain/model/customerorder"
)

// CustomerOrder is the wire form of a customer order.
type CustomerOrder struct {
	Id         *int64     `json:"id"`
	CustomerId string     `json:"customerId"`
	CreateTime *time.Time `json:"createTime"`
}

// Error is the body of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetCustomerOrdersParams defines parameters for GetCustomerOrders.
type GetCustomerOrdersParams struct {
	Page *int      `form:"page,omitempty" json:"page,omitempty"`
	Size *int      `form:"size,omitempty" json:"size,omitempty"`
	Sort *[]string `form:"sort,omitempty" json:"sort,omitempty"`
}

func toResponse(order *customerorder.CustomerOrder) CustomerOrder {
	id := order.ID()
	response := CustomerOrder{
		Id:         &id,
		CustomerId: order.CustomerID(),
	}
	if order.HasCreateTime() {
		createTime := order.CreateTime()
		response.CreateTime = &createTime
	}
	return response
}
