// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rangefinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeocodingHandler *handler.GeocodingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	geocodingHandler *handler.GeocodingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geocodingHandler: params.GeocodingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin geocoding routes
	adminGroup := e.Group("/admin/customers")
	{
		adminGroup.GET("/geocoding", r.geocodingHandler.List)
		adminGroup.POST("/geocoding", r.geocodingHandler.Reconcile)
		adminGroup.POST("/geocoding/batch", r.geocodingHandler.ReconcileBatch)
	}
}
