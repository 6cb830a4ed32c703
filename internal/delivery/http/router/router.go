// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wordvault/internal/delivery/http/middleware"
	"wordvault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	WordHandler    *handler.WordHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	wordHandler    *handler.WordHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		wordHandler:    params.WordHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Vocabulary routes, all owner-scoped behind authentication
	wordGroup := e.Group("/words")
	wordGroup.Use(r.authMiddleware.Authenticate)
	{
		wordGroup.GET("", r.wordHandler.List)
		wordGroup.POST("", r.wordHandler.Create)
		wordGroup.PUT("", r.wordHandler.Edit)
		wordGroup.DELETE("", r.wordHandler.Delete)
	}
}
