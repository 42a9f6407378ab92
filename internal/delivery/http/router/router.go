// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vendofyx/internal/delivery/http/middleware"
	"vendofyx/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	FeedbackHandler *handler.FeedbackHandler
	RateHandler     *handler.RateHandler
	BillingHandler  *handler.BillingHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	feedbackHandler *handler.FeedbackHandler
	rateHandler     *handler.RateHandler
	billingHandler  *handler.BillingHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		profileHandler:  params.ProfileHandler,
		feedbackHandler: params.FeedbackHandler,
		rateHandler:     params.RateHandler,
		billingHandler:  params.BillingHandler,
		authMiddleware:  params.AuthMiddleware,
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
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}

	// Dashboard routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/profile", r.profileHandler.GetProfile)
		apiGroup.PATCH("/profile", r.profileHandler.UpdateProfile)
		apiGroup.POST("/requests", r.feedbackHandler.IssueLink)
		apiGroup.GET("/requests", r.feedbackHandler.ListRequests)
		apiGroup.GET("/requests/:id/qr", r.feedbackHandler.GenerateLinkQR)
	}

	// Public rate page routes reached through the customer link
	rateGroup := e.Group("/rate")
	{
		rateGroup.GET("/:id", r.rateHandler.GetRateView)
		rateGroup.POST("/:id", r.rateHandler.SubmitRating)
	}

	// Payment provider webhooks
	e.POST("/webhooks/paddle", r.billingHandler.HandlePaddleWebhook)
}
