// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"superstore/internal/delivery/http/middleware"
	"superstore/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	CustomerHandler  *handler.CustomerHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	SaleHandler      *handler.SaleHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler  *handler.CustomerHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	saleHandler      *handler.SaleHandler
	analyticsHandler *handler.AnalyticsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:  params.CustomerHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		saleHandler:      params.SaleHandler,
		analyticsHandler: params.AnalyticsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every resource uses query-parameter keys so the paths stay flat.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("", r.authMiddleware.Authenticate)

	customerGroup := api.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.PUT("", r.customerHandler.Update)
		customerGroup.DELETE("", r.customerHandler.Delete)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.PUT("", r.productHandler.Update)
		productGroup.DELETE("", r.productHandler.Delete)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.PUT("", r.orderHandler.Update)
		orderGroup.DELETE("", r.orderHandler.Delete)
	}

	saleGroup := api.Group("/sales")
	{
		saleGroup.GET("", r.saleHandler.List)
		saleGroup.POST("", r.saleHandler.Create)
		saleGroup.PUT("", r.saleHandler.Update)
		saleGroup.DELETE("", r.saleHandler.Delete)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("/order-quantity", r.analyticsHandler.OrderQuantity)
		analyticsGroup.GET("/sales-by-category", r.analyticsHandler.SalesByCategory)
		analyticsGroup.GET("/sales-over-time", r.analyticsHandler.SalesOverTime)
	}
}
