// Package router builds the Echo instance: it installs the middleware
// stack and maps every route to its handler.
package router

import (
	"github.com/deppfellow/people-api/internal/handler"
	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the configured Echo instance, ready to be passed to
// server.SetupHTTPServer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and the New Relic transaction must
	// exist before the request logger is built.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerPersonRoutes(router.Group("/people"), h)

	return router
}
