package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler maps errors returned by handlers to responses:
// validation failures are 400, a missing order is 404 with an empty body,
// anything else is logged and reported as 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		var writeErr error
		switch {
		case ctx.Request().Method == http.MethodHead, code == http.StatusNotFound && message == "":
			writeErr = ctx.NoContent(code)
		default:
			writeErr = ctx.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Internal != nil && httpErr.Code == http.StatusBadRequest {
			return httpErr.Code, fmt.Sprintf("%v: %v", httpErr.Message, httpErr.Internal)
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ""
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
