// Package router registers the HTTP routes of the API.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	locationsGroup := apiV1.Group("/locations")
	{
		// Public discovery routes
		locationsGroup.GET("/nearby", r.locationHandler.Nearby)
		locationsGroup.GET("/search", r.locationHandler.Search)
		locationsGroup.GET("/details", r.locationHandler.Details)
		locationsGroup.POST("/geocode", r.locationHandler.Geocode)
		locationsGroup.GET("/popular", r.locationHandler.Popular)

		// Location updates require a bearer token
		locationsGroup.PUT("/products/:id", r.locationHandler.UpdateProductLocation, r.authMiddleware.Authenticate)
		locationsGroup.PUT("/user", r.locationHandler.UpdateUserLocation, r.authMiddleware.Authenticate)
	}
}
