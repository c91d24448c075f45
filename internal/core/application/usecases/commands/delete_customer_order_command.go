package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrDeleteCustomerOrderCommandIsNotConstructed = errors.New(
	"DeleteCustomerOrderCommand must be created via NewDeleteCustomerOrderCommand constructor",
)

// DeleteCustomerOrderCommand removes a customer order by id. Any id is
// accepted; deleting something that does not exist is a no-op.
type DeleteCustomerOrderCommand struct {
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteCustomerOrderCommand(id int64) DeleteCustomerOrderCommand {
	return DeleteCustomerOrderCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerOrderCommandIsNotConstructed)
}

func (c DeleteCustomerOrderCommand) ID() int64 {
	return c.id
}
