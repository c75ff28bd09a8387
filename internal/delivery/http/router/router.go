// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usuarios/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service discovery and health
	e.GET("/", handler.ServiceInfo)
	e.GET("/health", handler.HealthCheck)

	// Authentication
	e.POST("/login", r.userHandler.Login)

	// Account routes
	e.POST("/usuarios", r.userHandler.Register)
	e.GET("/usuarios", r.userHandler.List)
	e.GET("/usuarios/:id", r.userHandler.Get)
	e.PUT("/usuarios/:id", r.userHandler.Update)
	e.DELETE("/usuarios/:id", r.userHandler.Delete)
}
