package customerorderrepo_test

import (
	"context"
	"sync"
	"time"

	"shop/internal/adapters/out/postgres/customerorderrepo"
	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var (
	defaultCreateTime = time.Unix(0, 0).UTC()
	updatedCreateTime = time.Date(2021, 1, 1, 10, 30, 15, 123456789, time.UTC)
)

// repositoryContractSuite holds the behaviour every dialect must satisfy.
// Dialect suites embed it and provide db in SetupSuite.
type repositoryContractSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *customerorderrepo.GormCustomerOrderRepository
}

func (s *repositoryContractSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("DELETE FROM customer_orders").Error)
	s.repository = customerorderrepo.NewGormCustomerOrderRepository(s.db)
}

func (s *repositoryContractSuite) TestSave_NewOrder_AssignsID() {
	ctx := context.Background()

	saved := s.insert(ctx, "AAAAA", defaultCreateTime)

	s.True(saved.HasID())
	s.Equal("AAAAA", saved.CustomerID())
	s.True(saved.CreateTime().Equal(defaultCreateTime))
	s.assertOrderCount(1)

	stored, err := s.repository.Get(ctx, saved.ID())
	s.Require().NoError(err)
	s.True(saved.IsEqual(stored))
}

func (s *repositoryContractSuite) TestSave_NewOrders_GetDistinctIDs() {
	ctx := context.Background()

	first := s.insert(ctx, "AAAAA", defaultCreateTime)
	second := s.insert(ctx, "AAAAA", defaultCreateTime)

	s.NotEqual(first.ID(), second.ID())
	s.assertOrderCount(2)
}

func (s *repositoryContractSuite) TestSave_TruncatesToMicroseconds() {
	ctx := context.Background()

	saved := s.insert(ctx, "AAAAA", updatedCreateTime)

	expected := updatedCreateTime.Truncate(time.Microsecond)
	s.True(saved.CreateTime().Equal(expected))

	stored, err := s.repository.Get(ctx, saved.ID())
	s.Require().NoError(err)
	s.True(stored.CreateTime().Equal(expected))
}

func (s *repositoryContractSuite) TestSave_ZeroInstantIsNotAbsence() {
	ctx := context.Background()

	saved := s.insert(ctx, "AAAAA", time.Time{})

	stored, err := s.repository.Get(ctx, saved.ID())
	s.Require().NoError(err)
	s.True(stored.HasCreateTime())
	s.True(stored.CreateTime().IsZero())
}

func (s *repositoryContractSuite) TestSave_ExistingOrder_ReplacesAllFields() {
	ctx := context.Background()
	original := s.insert(ctx, "AAAAA", defaultCreateTime)

	replacement, err := customerorder.RestoreCustomerOrder(original.ID(), "BBBBB", nil)
	s.Require().NoError(err)

	saved, err := s.repository.Save(ctx, replacement)
	s.Require().NoError(err)
	s.Equal(original.ID(), saved.ID())

	stored, err := s.repository.Get(ctx, original.ID())
	s.Require().NoError(err)
	s.Equal("BBBBB", stored.CustomerID())
	s.False(stored.HasCreateTime(), "omitted create time must be cleared, not merged")
	s.assertOrderCount(1)
}

func (s *repositoryContractSuite) TestSave_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	ghost, err := customerorder.RestoreCustomerOrder(987654, "BBBBB", &defaultCreateTime)
	s.Require().NoError(err)

	saved, err := s.repository.Save(ctx, ghost)

	s.Nil(saved)
	var notFoundErr *errs.ObjectNotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.assertOrderCount(0)
}

func (s *repositoryContractSuite) TestSave_NotConstructed() {
	_, err := s.repository.Save(context.Background(), &customerorder.CustomerOrder{})

	s.Require().ErrorIs(err, customerorder.ErrCustomerOrderIsNotConstructed)
	s.assertOrderCount(0)
}

func (s *repositoryContractSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := s.repository.Get(context.Background(), 424242)

	s.Nil(retrieved)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Require().NotErrorIs(err, errs.ErrPersistence)
}

func (s *repositoryContractSuite) TestFindAll_Paging() {
	ctx := context.Background()
	ids := make([]int64, 0, 5)
	for range 5 {
		ids = append(ids, s.insert(ctx, "AAAAA", defaultCreateTime).ID())
	}

	request, err := kernel.NewPageRequest(1, 2)
	s.Require().NoError(err)

	page, err := s.repository.FindAll(ctx, request)
	s.Require().NoError(err)

	s.Equal(int64(5), page.TotalElements)
	s.Equal(3, page.TotalPages())
	s.Equal(1, page.Number)
	s.Require().Len(page.Content, 2)
	s.Equal(ids[2], page.Content[0].ID())
	s.Equal(ids[3], page.Content[1].ID())
}

func (s *repositoryContractSuite) TestFindAll_AllFitInOnePage() {
	ctx := context.Background()
	for range 3 {
		s.insert(ctx, "AAAAA", defaultCreateTime)
	}

	request, err := kernel.NewPageRequest(0, 20)
	s.Require().NoError(err)

	page, err := s.repository.FindAll(ctx, request)
	s.Require().NoError(err)

	s.Len(page.Content, 3)
	s.Equal(int64(3), page.TotalElements)
	s.False(page.HasNext())
}

func (s *repositoryContractSuite) TestFindAll_SortsByRequestedProperty() {
	ctx := context.Background()
	s.insert(ctx, "BBBBB", defaultCreateTime)
	s.insert(ctx, "CCCCC", updatedCreateTime)
	s.insert(ctx, "AAAAA", defaultCreateTime.Add(time.Hour))

	request, err := kernel.NewPageRequest(0, 10, kernel.SortOrder{Property: "customerId", Direction: kernel.Desc})
	s.Require().NoError(err)

	page, err := s.repository.FindAll(ctx, request)
	s.Require().NoError(err)

	s.Require().Len(page.Content, 3)
	s.Equal("CCCCC", page.Content[0].CustomerID())
	s.Equal("BBBBB", page.Content[1].CustomerID())
	s.Equal("AAAAA", page.Content[2].CustomerID())

	request, err = kernel.NewPageRequest(0, 10, kernel.SortOrder{Property: "createTime", Direction: kernel.Asc})
	s.Require().NoError(err)

	page, err = s.repository.FindAll(ctx, request)
	s.Require().NoError(err)

	s.Require().Len(page.Content, 3)
	s.Equal("BBBBB", page.Content[0].CustomerID())
	s.Equal("AAAAA", page.Content[1].CustomerID())
	s.Equal("CCCCC", page.Content[2].CustomerID())
}

func (s *repositoryContractSuite) TestFindAll_UnknownSortProperty() {
	request, err := kernel.NewPageRequest(0, 10, kernel.SortOrder{Property: "customer_id; DROP TABLE", Direction: kernel.Asc})
	s.Require().NoError(err)

	_, err = s.repository.FindAll(context.Background(), request)

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *repositoryContractSuite) TestFindAll_PageBeyondEnd() {
	ctx := context.Background()
	s.insert(ctx, "AAAAA", defaultCreateTime)

	request, err := kernel.NewPageRequest(3, 10)
	s.Require().NoError(err)

	page, err := s.repository.FindAll(ctx, request)
	s.Require().NoError(err)

	s.NotNil(page.Content)
	s.Empty(page.Content)
	s.Equal(int64(1), page.TotalElements)
}

func (s *repositoryContractSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	saved := s.insert(ctx, "AAAAA", defaultCreateTime)

	s.Require().NoError(s.repository.Delete(ctx, saved.ID()))
	s.Require().NoError(s.repository.Delete(ctx, saved.ID()))

	_, err := s.repository.Get(ctx, saved.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.assertOrderCount(0)
}

func (s *repositoryContractSuite) TestConcurrentReads() {
	ctx := context.Background()
	saved := s.insert(ctx, "AAAAA", defaultCreateTime)

	var wg sync.WaitGroup
	results := make(chan error, 3)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			retrieved, err := s.repository.Get(ctx, saved.ID())
			if err == nil && retrieved.ID() != saved.ID() {
				err = errs.NewValueIsInvalidError("id")
			}
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		s.NoError(err)
	}
}

func (s *repositoryContractSuite) insert(ctx context.Context, customerID string, createTime time.Time) *customerorder.CustomerOrder {
	candidate, err := customerorder.NewCustomerOrder(customerID, &createTime)
	s.Require().NoError(err)

	saved, err := s.repository.Save(ctx, candidate)
	s.Require().NoError(err)
	return saved
}

func (s *repositoryContractSuite) assertOrderCount(expected int) {
	var count int64
	err := s.db.Model(&customerorderrepo.CustomerOrderDTO{}).Count(&count).Error
	s.Require().NoError(err)
	s.Equal(int64(expected), count)
}
