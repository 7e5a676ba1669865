// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"soapbox/internal/delivery/http/middleware"
	"soapbox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	VoteHandler    *handler.VoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	voteHandler    *handler.VoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		voteHandler:    params.VoteHandler,
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
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes: registration and lookup are public.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Post routes all require authentication, reads included.
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.Create)
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/:id", r.postHandler.Get)
		postGroup.PUT("/:id", r.postHandler.Update)
		postGroup.DELETE("/:id", r.postHandler.Delete)
	}

	// Vote routes require authentication
	voteGroup := e.Group("/votes")
	voteGroup.Use(r.authMiddleware.Authenticate)
	{
		voteGroup.POST("", r.voteHandler.Apply)
		voteGroup.GET("", r.voteHandler.List)
	}
}
