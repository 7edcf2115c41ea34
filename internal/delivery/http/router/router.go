// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ApartmentHandler *handler.ApartmentHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	apartmentHandler *handler.ApartmentHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		apartmentHandler: params.ApartmentHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration and login are the only unauthenticated routes.
	e.POST("/users", r.userHandler.Register)
	e.POST("/users/login", r.userHandler.Login)

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/logout", r.userHandler.Logout)
		userGroup.POST("/logoutAll", r.userHandler.LogoutAll)
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.POST("/me/avatar", r.userHandler.UploadAvatar)
		userGroup.DELETE("/me/avatar", r.userHandler.DeleteAvatar)
		userGroup.GET("/:id/avatar", r.userHandler.GetAvatar)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.PATCH("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	apartmentGroup := e.Group("/apartments")
	apartmentGroup.Use(r.authMiddleware.Authenticate)
	{
		apartmentGroup.POST("", r.apartmentHandler.Create)
		apartmentGroup.GET("", r.apartmentHandler.List)
		apartmentGroup.GET("/:id", r.apartmentHandler.GetByID)
		apartmentGroup.PATCH("/:id", r.apartmentHandler.Update)
		apartmentGroup.DELETE("/:id", r.apartmentHandler.Delete)
	}
}
