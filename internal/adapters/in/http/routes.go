package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get a page of customer orders
	// (GET /api/customer-orders)
	GetCustomerOrders(ctx echo.Context, params GetCustomerOrdersParams) error
	// Create a customer order
	// (POST /api/customer-orders)
	CreateCustomerOrder(ctx echo.Context) error
	// Replace a customer order
	// (PUT /api/customer-orders)
	UpdateCustomerOrder(ctx echo.Context) error
	// Delete a customer order
	// (DELETE /api/customer-orders/{id})
	DeleteCustomerOrder(ctx echo.Context, id int64) error
	// Get a customer order
	// (GET /api/customer-orders/{id})
	GetCustomerOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetCustomerOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomerOrders(ctx echo.Context) error {
	var err error
	var params GetCustomerOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}

	return w.Handler.GetCustomerOrders(ctx, params)
}

// CreateCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomerOrder(ctx echo.Context) error {
	return w.Handler.CreateCustomerOrder(ctx)
}

// UpdateCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCustomerOrder(ctx echo.Context) error {
	return w.Handler.UpdateCustomerOrder(ctx)
}

// DeleteCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCustomerOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCustomerOrder(ctx, id)
}

// GetCustomerOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomerOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCustomerOrder(ctx, id)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/customer-orders", wrapper.GetCustomerOrders)
	router.POST(baseURL+"/api/customer-orders", wrapper.CreateCustomerOrder)
	router.PUT(baseURL+"/api/customer-orders", wrapper.UpdateCustomerOrder)
	router.DELETE(baseURL+"/api/customer-orders/:id", wrapper.DeleteCustomerOrder)
	router.GET(baseURL+"/api/customer-orders/:id", wrapper.GetCustomerOrder)
}
