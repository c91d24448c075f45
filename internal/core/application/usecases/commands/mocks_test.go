package commands_test

import (
	"context"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerOrderRepository struct{ mock.Mock }

func (m *MockCustomerOrderRepository) Save(
	ctx context.Context,
	o *customerorder.CustomerOrder,
) (*customerorder.CustomerOrder, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*customerorder.CustomerOrder)
	return saved, args.Error(1)
}

func (m *MockCustomerOrderRepository) Get(ctx context.Context, id int64) (*customerorder.CustomerOrder, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*customerorder.CustomerOrder)
	return found, args.Error(1)
}

func (m *MockCustomerOrderRepository) FindAll(
	ctx context.Context,
	request kernel.PageRequest,
) (kernel.Page[*customerorder.CustomerOrder], error) {
	args := m.Called(ctx, request)
	return args.Get(0).(kernel.Page[*customerorder.CustomerOrder]), args.Error(1)
}

func (m *MockCustomerOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerOrderUoW struct{ mock.Mock }

func (m *MockCustomerOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerOrderUoW) CustomerOrderRepository() ports.CustomerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerOrderRepository)
}

type MockCustomerOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerOrderUoW)
}
