package customerorder

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"shop/internal/pkg/errs"
)

// EntityName identifies the aggregate in alerts and error reports.
const EntityName = "customerOrder"

// MaxCustomerIDLength matches the width of the customer_id column.
const MaxCustomerIDLength = 255

var (
	// ErrCustomerOrderIsNotConstructed is returned when a CustomerOrder instance was not
	// created through NewCustomerOrder or RestoreCustomerOrder.
	ErrCustomerOrderIsNotConstructed = errors.New(
		"CustomerOrder must be created via NewCustomerOrder or RestoreCustomerOrder",
	)
)

// CustomerOrder is the aggregate root for an order placed by a customer.
//
// The zero id means "not persisted yet". Once a record has an id it never
// changes: updates replace every other field but keep the identity.
type CustomerOrder struct {
	id         int64
	customerID string
	createTime time.Time

	hasCreateTime bool
	isConstructed bool
}

// NewCustomerOrder creates an order that has not been persisted yet.
// A nil createTime means the creation time is unknown. Any other value, the
// zero instant included, is kept.
//
// Example:
//
//	now := time.Now()
//	o, err := customerorder.NewCustomerOrder("AAAAA", &now)
//	if err != nil {
//	    return err
//	}
//	saved, err := repo.Save(ctx, o) // saved.ID() is now assigned
func NewCustomerOrder(customerID string, createTime *time.Time) (*CustomerOrder, error) {
	order := &CustomerOrder{isConstructed: true}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setCreateTime(createTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreCustomerOrder rebuilds an order that already has an identity, either
// read back from storage or submitted as a full replacement.
func RestoreCustomerOrder(id int64, customerID string, createTime *time.Time) (*CustomerOrder, error) {
	order := &CustomerOrder{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCreateTime(createTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was built through one of the constructors.
func (o *CustomerOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCustomerOrderIsNotConstructed
	}

	return nil
}

// ID returns the datastore identifier, 0 when the order is not persisted.
func (o *CustomerOrder) ID() int64 {
	return o.id
}

// HasID reports whether the order already has a datastore identity.
func (o *CustomerOrder) HasID() bool {
	return o.id != 0
}

// CustomerID returns the business reference of the customer.
func (o *CustomerOrder) CustomerID() string {
	return o.customerID
}

// CreateTime returns the creation moment in UTC, or the zero time if unknown.
func (o *CustomerOrder) CreateTime() time.Time {
	return o.createTime
}

// HasCreateTime reports whether a creation moment was supplied.
func (o *CustomerOrder) HasCreateTime() bool {
	return o.hasCreateTime
}

// IsEqual compares two orders field by field. Timestamps are compared as instants.
func (o *CustomerOrder) IsEqual(other *CustomerOrder) bool {
	return other != nil &&
		o.id == other.id &&
		o.customerID == other.customerID &&
		o.hasCreateTime == other.hasCreateTime &&
		o.createTime.Equal(other.createTime)
}

func (o *CustomerOrder) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *CustomerOrder) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	if n := utf8.RuneCountInString(customerID); n > MaxCustomerIDLength {
		return errs.NewValueIsOutOfRangeError("customerId length", n, 1, MaxCustomerIDLength)
	}
	o.customerID = customerID
	return nil
}

func (o *CustomerOrder) setCreateTime(createTime *time.Time) error {
	if createTime == nil {
		o.createTime, o.hasCreateTime = time.Time{}, false
		return nil
	}
	o.createTime, o.hasCreateTime = createTime.UTC(), true
	return nil
}
