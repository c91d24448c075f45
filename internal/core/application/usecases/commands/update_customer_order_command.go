package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateCustomerOrderCommandIsNotConstructed = errors.New(
	"UpdateCustomerOrderCommand must be created via NewUpdateCustomerOrderCommand constructor",
)

// UpdateCustomerOrderCommand replaces every field of an existing customer order.
// There is no partial update: a nil createTime clears the stored one.
type UpdateCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	id         int64
	customerID string
	createTime *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateCustomerOrderCommand requires a positive id and a customer reference.
func NewUpdateCustomerOrderCommand(
	id int64,
	customerID string,
	createTime *time.Time,
) (UpdateCustomerOrderCommand, error) {
	cmd := UpdateCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setCustomerID(customerID),
	); err != nil {
		return UpdateCustomerOrderCommand{}, err
	}
	if createTime != nil {
		t := *createTime
		cmd.createTime = &t
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerOrderCommandIsNotConstructed)
}

func (c UpdateCustomerOrderCommand) ID() int64 {
	return c.id
}

func (c UpdateCustomerOrderCommand) CustomerID() string {
	return c.customerID
}

func (c UpdateCustomerOrderCommand) CreateTime() *time.Time {
	return c.createTime
}

func (c *UpdateCustomerOrderCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}

	c.id = id
	return nil
}

func (c *UpdateCustomerOrderCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}
