package stubapi

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// NewRouter builds the echo instance serving the stub platform.
func NewRouter(store *Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// Request metrics get a per-router registry so tests can build
	// several routers without duplicate registration; the domain
	// counters stay on the default registry.
	requests := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "studytech_stub",
		Registerer: requests,
	}))

	// --- Resources ---
	users := &usersHandler{store: store}
	e.GET("/users", users.List)
	e.GET("/users/:id", users.Get)
	e.POST("/users", users.Create)
	e.PUT("/users/:id", users.Update)
	e.DELETE("/users/:id", users.Delete)

	posts := &postsHandler{store: store}
	e.GET("/posts", posts.List)
	e.GET("/posts/:id", posts.Get)
	e.POST("/posts", posts.Create)
	e.PUT("/posts/:id", posts.Update)
	e.DELETE("/posts/:id", posts.Delete)

	// --- Probes ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{requests, prometheus.DefaultGatherer},
	}))

	return e
}
