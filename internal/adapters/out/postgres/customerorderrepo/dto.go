// Package customerorderrepo provides the gorm-backed repository for customer orders
// together with the table mapping and the conversion between rows and aggregates.
package customerorderrepo

import (
	"time"

	"shop/internal/core/domain/model/customerorder"
)

// CustomerOrderDTO is the row stored in the customer_orders table.
type CustomerOrderDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	CustomerID string     `gorm:"type:varchar(255);not null"`
	CreateTime *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (CustomerOrderDTO) TableName() string {
	return "customer_orders"
}

// fromDomain converts the aggregate to its row. Timestamps are truncated to
// microseconds, the finest precision PostgreSQL keeps, so the value handed
// back to callers is exactly the stored one.
func fromDomain(order *customerorder.CustomerOrder) CustomerOrderDTO {
	var createTime *time.Time
	if order.HasCreateTime() {
		t := order.CreateTime().UTC().Truncate(time.Microsecond)
		createTime = &t
	}

	return CustomerOrderDTO{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		CreateTime: createTime,
	}
}

func toDomain(dto CustomerOrderDTO) (*customerorder.CustomerOrder, error) {
	return customerorder.RestoreCustomerOrder(dto.ID, dto.CustomerID, dto.CreateTime)
}
