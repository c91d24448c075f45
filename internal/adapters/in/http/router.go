package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig collects everything NewRouter wires into the echo instance.
type RouterConfig struct {
	Server           ServerInterface
	Doc              *openapi3.T
	Logger           *slog.Logger
	LogLevel         slog.Level
	Registry         *prometheus.Registry
	Health           http.Handler
	ValidateRequests bool
}

// NewRouter builds the echo instance serving the customer order API together
// with /health, /metrics, /v3/api-docs and the Swagger UI.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.LogLevel))
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(RequestID())
	if cfg.Registry != nil {
		e.Use(NewMetrics(cfg.Registry).Middleware())
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}
	e.Use(RequestLogger(cfg.Logger))

	if cfg.Health != nil {
		e.GET("/health", echo.WrapHandler(cfg.Health))
	}

	if cfg.Doc != nil {
		if err := RegisterSwagger(cfg.Doc); err != nil {
			return nil, err
		}
		e.GET("/v3/api-docs", APIDocsHandler(cfg.Doc))
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	if cfg.ValidateRequests && cfg.Doc != nil {
		e.Use(RequestValidator(cfg.Doc))
	}
	RegisterHandlers(e, cfg.Server)

	return e, nil
}

func gommonLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
