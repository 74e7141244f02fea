package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RegisterRoutes configures all API routes, middleware, and error handlers
func RegisterRoutes(e *echo.Echo, h *Handlers, cfg ServerConfig) {
	// Set custom error handler for consistent JSON responses
	e.HTTPErrorHandler = NotFoundJSON()

	// Apply global middleware
	e.Use(SetJSONContentType) // Ensure all responses are JSON
	e.Use(SetNoCacheHeaders)  // Views are recomputed per request; never cache

	// Optional API key authentication
	if cfg.APIKey != "" {
		e.Use(middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			KeyLookup: "header:X-API-Key",
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == cfg.APIKey, nil
			},
		}))
	}

	// API v1 routes
	v1 := e.Group("/v1")
	v1.GET("/health", h.Health) // Health check endpoint
	v1.GET("/range", h.Range)   // Dataset purchase date bounds

	// Dashboard view endpoints; start/end query params select the range
	dash := v1.Group("/dashboard")
	dash.GET("", h.Dashboard)             // Full view: metrics + all chart blocks
	dash.GET("/yearly", h.Yearly)         // Yearly orders/revenue line chart
	dash.GET("/cities", h.Cities)         // Top cities bar chart
	dash.GET("/categories", h.Categories) // Category dual-axis chart (catalog-wide)
	dash.GET("/rfm", h.RFM)               // RFM rankings and averages

	// Export endpoint with rate limiting; it writes files, unlike the views
	exportGroup := v1.Group("/export")
	exportGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(0.2), // 1 request every 5 seconds
		Burst:     2,               // Allow burst of 2 requests
		ExpiresIn: 2 * time.Minute, // Rate limit window
	})))
	exportGroup.POST("", h.Export)

	// Catch-all route for 404 responses
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Code: http.StatusNotFound})
	})
}
