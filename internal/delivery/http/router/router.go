// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"referral/internal/delivery/http/middleware"
	"referral/internal/delivery/http/router/handler"
	"referral/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReferralHandler *handler.ReferralHandler
	CodeHandler     *handler.CodeHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	referralHandler *handler.ReferralHandler
	codeHandler     *handler.CodeHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		referralHandler: params.ReferralHandler,
		codeHandler:     params.CodeHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Signup and purchase notifications arrive from upstream services.
	e.POST("/signup", r.referralHandler.Signup)
	e.POST("/purchases/qualifying", r.referralHandler.CompleteQualifyingPurchase)

	// Code registry routes
	e.GET("/codes/:code", r.codeHandler.Lookup)

	// User-facing referral routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/:id/referrals", r.referralHandler.GetReferralSummary)
		userGroup.GET("/:id/code/qr", r.codeHandler.GenerateQR)
		userGroup.PUT("/:id/device-token", r.referralHandler.RegisterDeviceToken)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/users/:id/code", r.adminHandler.ReassignCode)
		adminGroup.POST("/rewards/reconcile", r.adminHandler.ReconcileRewards)
	}
}
