package customerorderrepo

import (
	"context"
	"errors"
	"strconv"

	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps API property names to columns. Anything else is rejected
// so client input never reaches the ORDER BY clause verbatim.
var sortColumns = map[string]string{
	"id":         "id",
	"customerId": "customer_id",
	"createTime": "create_time",
}

// GormCustomerOrderRepository implements ports.CustomerOrderRepository using GORM.
type GormCustomerOrderRepository struct {
	db *gorm.DB
}

// NewGormCustomerOrderRepository creates a repository on db, which may be a transaction.
func NewGormCustomerOrderRepository(db *gorm.DB) *GormCustomerOrderRepository {
	return &GormCustomerOrderRepository{db: db}
}

// Save inserts an order without identity or replaces the stored one.
func (r *GormCustomerOrderRepository) Save(
	ctx context.Context,
	aggregate *customerorder.CustomerOrder,
) (*customerorder.CustomerOrder, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if !aggregate.HasID() {
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return nil, errs.NewPersistenceError("insert customer order", err)
		}
		return toDomain(dto)
	}

	// A map update writes NULLs too, which a struct update would skip.
	result := r.db.WithContext(ctx).Model(&CustomerOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_id": dto.CustomerID,
		"create_time": dto.CreateTime,
	})
	if result.Error != nil {
		return nil, errs.NewPersistenceError("update customer order", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("id", strconv.FormatInt(dto.ID, 10))
	}

	return toDomain(dto)
}

// Get retrieves a customer order by ID.
func (r *GormCustomerOrderRepository) Get(ctx context.Context, id int64) (*customerorder.CustomerOrder, error) {
	var dto CustomerOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", strconv.FormatInt(id, 10))
		}
		return nil, errs.NewPersistenceError("get customer order", err)
	}

	return toDomain(dto)
}

// FindAll returns one page of orders ordered by the requested properties,
// with id ascending as the final tie-breaker.
func (r *GormCustomerOrderRepository) FindAll(
	ctx context.Context,
	request kernel.PageRequest,
) (kernel.Page[*customerorder.CustomerOrder], error) {
	orderBy, err := orderByClause(request.Sort())
	if err != nil {
		return kernel.Page[*customerorder.CustomerOrder]{}, err
	}

	var total int64
	if err = r.db.WithContext(ctx).Model(&CustomerOrderDTO{}).Count(&total).Error; err != nil {
		return kernel.Page[*customerorder.CustomerOrder]{}, errs.NewPersistenceError("count customer orders", err)
	}

	if request.IsBeyond(total) {
		return kernel.NewPage[*customerorder.CustomerOrder](nil, request, total), nil
	}

	var dtos []CustomerOrderDTO
	if err = r.db.WithContext(ctx).
		Clauses(orderBy).
		Offset(request.Offset()).
		Limit(request.Size()).
		Find(&dtos).Error; err != nil {
		return kernel.Page[*customerorder.CustomerOrder]{}, errs.NewPersistenceError("list customer orders", err)
	}

	orders := make([]*customerorder.CustomerOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return kernel.Page[*customerorder.CustomerOrder]{}, convErr
		}
		orders = append(orders, o)
	}

	return kernel.NewPage(orders, request, total), nil
}

// Delete removes the order; a missing row is not an error.
func (r *GormCustomerOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&CustomerOrderDTO{}, "id = ?", id).Error; err != nil {
		return errs.NewPersistenceError("delete customer order", err)
	}

	return nil
}

func orderByClause(sort []kernel.SortOrder) (clause.OrderBy, error) {
	columns := make([]clause.OrderByColumn, 0, len(sort)+1)
	hasID := false
	for _, order := range sort {
		column, ok := sortColumns[order.Property]
		if !ok {
			return clause.OrderBy{}, errs.NewValueIsInvalidErrorWithCause(
				"sort", errors.New("unknown property "+strconv.Quote(order.Property)),
			)
		}
		hasID = hasID || column == "id"
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   order.Direction == kernel.Desc,
		})
	}

	if !hasID {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	return clause.OrderBy{Columns: columns}, nil
}
