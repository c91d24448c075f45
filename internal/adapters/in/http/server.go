package http

import (
	"net/http"
	"strconv"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/customerorder"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/headerutil"
	"shop/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
)

const (
	resourcePath = "/api/customer-orders"

	defaultPageSize    = 20
	defaultMaxPageSize = 2000
)

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createHandler commands.CreateCustomerOrderCommandHandler
	updateHandler commands.UpdateCustomerOrderCommandHandler
	deleteHandler commands.DeleteCustomerOrderCommandHandler

	// Query handlers
	getHandler     queries.GetCustomerOrderQueryHandler
	getPageHandler queries.GetCustomerOrdersQueryHandler

	alerts      headerutil.Alerts
	maxPageSize int
}

// NewServer creates a new HTTP server with the required command and query handlers.
// A non-positive maxPageSize falls back to 2000.
func NewServer(
	createHandler commands.CreateCustomerOrderCommandHandler,
	updateHandler commands.UpdateCustomerOrderCommandHandler,
	deleteHandler commands.DeleteCustomerOrderCommandHandler,
	getHandler queries.GetCustomerOrderQueryHandler,
	getPageHandler queries.GetCustomerOrdersQueryHandler,
	appName string,
	maxPageSize int,
) *Server {
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &Server{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		getPageHandler: getPageHandler,
		alerts:         headerutil.NewAlerts(appName),
		maxPageSize:    maxPageSize,
	}
}

// CreateCustomerOrder handles POST /api/customer-orders.
// A body that already carries an id is rejected with the idexists alert.
func (s *Server) CreateCustomerOrder(ctx echo.Context) error {
	var body CustomerOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	if body.Id != nil {
		headerutil.Copy(ctx.Response().Header(), s.alerts.Failure(customerorder.EntityName, "idexists"))
		return ctx.NoContent(http.StatusBadRequest)
	}

	return s.create(ctx, body)
}

// UpdateCustomerOrder handles PUT /api/customer-orders.
// A body without id is created instead.
func (s *Server) UpdateCustomerOrder(ctx echo.Context) error {
	var body CustomerOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	if body.Id == nil {
		return s.create(ctx, body)
	}

	cmd, err := commands.NewUpdateCustomerOrderCommand(*body.Id, body.CustomerId, body.CreateTime)
	if err != nil {
		return err
	}

	saved, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(saved.ID(), 10)
	headerutil.Copy(ctx.Response().Header(), s.alerts.EntityUpdated(customerorder.EntityName, id))
	return ctx.JSON(http.StatusOK, toResponse(saved))
}

// GetCustomerOrders handles GET /api/customer-orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, params GetCustomerOrdersParams) error {
	pageRequest, err := s.pageRequest(params)
	if err != nil {
		return err
	}

	page, err := s.getPageHandler.Handle(ctx.Request().Context(), queries.NewGetCustomerOrdersQuery(pageRequest))
	if err != nil {
		return err
	}

	headerutil.Copy(ctx.Response().Header(), pagination.Headers(ctx.Request().URL.RequestURI(), page))

	response := make([]CustomerOrder, len(page.Content))
	for i, order := range page.Content {
		response[i] = toResponse(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrder handles GET /api/customer-orders/{id}.
func (s *Server) GetCustomerOrder(ctx echo.Context, id int64) error {
	order, err := s.getHandler.Handle(ctx.Request().Context(), queries.NewGetCustomerOrderQuery(id))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toResponse(order))
}

// DeleteCustomerOrder handles DELETE /api/customer-orders/{id}.
// The response is the same whether or not the order existed.
func (s *Server) DeleteCustomerOrder(ctx echo.Context, id int64) error {
	if err := s.deleteHandler.Handle(ctx.Request().Context(), commands.NewDeleteCustomerOrderCommand(id)); err != nil {
		return err
	}

	headerutil.Copy(ctx.Response().Header(),
		s.alerts.EntityDeleted(customerorder.EntityName, strconv.FormatInt(id, 10)))
	return ctx.NoContent(http.StatusOK)
}

func (s *Server) create(ctx echo.Context, body CustomerOrder) error {
	cmd, err := commands.NewCreateCustomerOrderCommand(body.CustomerId, body.CreateTime)
	if err != nil {
		return err
	}

	saved, err := s.createHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	id := strconv.FormatInt(saved.ID(), 10)
	ctx.Response().Header().Set(echo.HeaderLocation, resourcePath+"/"+id)
	headerutil.Copy(ctx.Response().Header(), s.alerts.EntityCreated(customerorder.EntityName, id))
	return ctx.JSON(http.StatusCreated, toResponse(saved))
}

// pageRequest applies the paging defaults: page 0, size 20, negative pages
// clamp to 0 and oversized pages clamp to maxPageSize.
func (s *Server) pageRequest(params GetCustomerOrdersParams) (kernel.PageRequest, error) {
	page := 0
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}

	size := defaultPageSize
	if params.Size != nil && *params.Size >= 1 {
		size = min(*params.Size, s.maxPageSize)
	}

	var sort []kernel.SortOrder
	if params.Sort != nil {
		for _, raw := range *params.Sort {
			orders, err := kernel.ParseSort(raw)
			if err != nil {
				return kernel.PageRequest{}, err
			}
			sort = append(sort, orders...)
		}
	}

	return kernel.NewPageRequest(page, size, sort...)
}
