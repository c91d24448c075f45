// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerOrderRepoFactory provides access to the customer order repository within a transaction.
	CustomerOrderRepoFactory interface {
		CustomerOrderRepository() ports.CustomerOrderRepository
	}

	// CustomerOrderUoW manages transactions for customer order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   saved, err := uow.CustomerOrderRepository().Save(ctx, order)
	//
	//   err = uow.Commit(ctx)
	CustomerOrderUoW interface {
		TxManager
		CustomerOrderRepoFactory
	}

	// CustomerOrderUoWFactory creates new customer order unit of work instances.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}
)
