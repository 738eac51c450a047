// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"qkart/config"
	"qkart/internal/delivery/api/middleware"
	"qkart/internal/delivery/api/router/handler"
	"qkart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog reads are public
	e.GET("/v1/products/:productId", r.productHandler.GetProduct)

	// API v1 routes
	apiV1 := e.Group("/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All other API v1 routes require authentication

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddToCart)
		cartGroup.PUT("", r.cartHandler.UpdateCart)
		cartGroup.PUT("/checkout", r.cartHandler.Checkout)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/:userId", r.userHandler.GetUser)
		usersGroup.PUT("/:userId", r.userHandler.UpdateAddress)
	}
}

// RegisterMetricsRoute exposes the prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
