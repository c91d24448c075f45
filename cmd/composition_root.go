package cmd

import (
	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/customerorderrepo"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) customerOrderUoWFactory() commands.CustomerOrderUoWFactory {
	return FuncCustomerOrderUoWFactory(func() commands.CustomerOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerOrderCommandHandler() commands.CreateCustomerOrderCommandHandler {
	return commands.NewCreateCustomerOrderCommandHandler(c.customerOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerOrderCommandHandler() commands.UpdateCustomerOrderCommandHandler {
	return commands.NewUpdateCustomerOrderCommandHandler(c.customerOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerOrderCommandHandler() commands.DeleteCustomerOrderCommandHandler {
	return commands.NewDeleteCustomerOrderCommandHandler(c.customerOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerOrderQueryHandler() queries.GetCustomerOrderQueryHandler {
	return queries.NewGetCustomerOrderQueryHandler(customerorderrepo.NewGormCustomerOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(customerorderrepo.NewGormCustomerOrderRepository(c.gormDB))
}

type FuncCustomerOrderUoWFactory func() commands.CustomerOrderUoW

func (f FuncCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	return f()
}
