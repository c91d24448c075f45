package commands

import (
	"errors"
	"strings"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateCustomerOrderCommandIsNotConstructed = errors.New(
	"CreateCustomerOrderCommand must be created via NewCreateCustomerOrderCommand constructor",
)

// CreateCustomerOrderCommand represents a request to register a new customer order.
// It carries no identifier: the datastore assigns one when the order is saved.
//
// Example:
//
//	cmd, err := NewCreateCustomerOrderCommand("AAAAA", &now)
//	if err != nil {
//	    return fmt.Errorf("invalid customer order: %w", err)
//	}
//
//	saved, err := handler.Handle(ctx, cmd)
type CreateCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	createTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateCustomerOrderCommand validates that the customer reference is present.
// A nil createTime is accepted and stored as unknown.
func NewCreateCustomerOrderCommand(customerID string, createTime *time.Time) (CreateCustomerOrderCommand, error) {
	cmd := CreateCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateCustomerOrderCommand{}, err
	}
	if createTime != nil {
		t := *createTime
		cmd.createTime = &t
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerOrderCommandIsNotConstructed)
}

func (c CreateCustomerOrderCommand) CustomerID() string {
	return c.customerID
}

func (c CreateCustomerOrderCommand) CreateTime() *time.Time {
	return c.createTime
}

func (c *CreateCustomerOrderCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}
