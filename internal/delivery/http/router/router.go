// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rater/internal/delivery/http/middleware"
	"rater/internal/delivery/http/router/handler"
	"rater/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StoreHandler   *handler.StoreHandler
	RatingHandler  *handler.RatingHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	storeHandler   *handler.StoreHandler
	ratingHandler  *handler.RatingHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		storeHandler:   params.StoreHandler,
		ratingHandler:  params.RatingHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes. Registration, login and token rotation are public; the
	// self-service routes need a logged-in caller.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.PUT("/update-password", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
		authGroup.PUT("/update-profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
	}

	// Store routes. Browsing is public; the detail route resolves the caller
	// when a token is presented so the response can carry their own rating.
	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.GET("/search", r.storeHandler.Search)
		storeGroup.GET("/:id", r.storeHandler.GetByID, r.authMiddleware.OptionalAuthenticate)
		storeGroup.POST("", r.storeHandler.Create,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
	}

	// Admin user directory.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/dashboard/stats", r.userHandler.DashboardStats)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.POST("", r.userHandler.Create)
	}

	// Rating routes, all authenticated. Role gating for the per-store list
	// happens in the usecase, which knows store ownership.
	ratingGroup := api.Group("/ratings")
	ratingGroup.Use(r.authMiddleware.Authenticate)
	{
		ratingGroup.POST("", r.ratingHandler.Submit)
		ratingGroup.PUT("", r.ratingHandler.Update)
		ratingGroup.GET("/store/:storeId", r.ratingHandler.StoreRatings)
		ratingGroup.GET("/user", r.ratingHandler.UserRatings)
		ratingGroup.DELETE("/:id", r.ratingHandler.Delete)
	}
}
