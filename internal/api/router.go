package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gmoreira/marketpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the diagnostics and API routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered
//     in app.InitializeApp().
func NewRouter(handler *Handler, diag *DiagnosticsHandler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.RateLimiter(),
	)

	// Per-request timeout; cancellation itself is enforced by the
	// surrounding handlers via the request context.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", diag.Home)
	router.GET("/tables", diag.ListTables)

	api := router.Group("/api")
	{
		api.GET("/market", handler.GetMarketData)
		api.GET("/stock/:ticker", handler.GetStockData)
	}

	return router
}
