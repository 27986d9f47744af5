// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	AffiliateHandler    *handler.AffiliateHandler
	OnboardingHandler   *handler.OnboardingHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	affiliateHandler    *handler.AffiliateHandler
	onboardingHandler   *handler.OnboardingHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		affiliateHandler:    params.AffiliateHandler,
		onboardingHandler:   params.OnboardingHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Invite links resolve before the collaborator has an account.
	e.GET("/invites/:token", r.affiliateHandler.ResolveInvite)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Onboarding routes for the invited affiliate's collaborators
	onboardingGroup := e.Group("/onboarding")
	onboardingGroup.Use(r.authMiddleware.Authenticate)
	onboardingGroup.Use(r.authMiddleware.RequireCollaborator)
	{
		onboardingGroup.GET("", r.onboardingHandler.Progress)
		onboardingGroup.GET("/sections/:id", r.onboardingHandler.GetSection)
		onboardingGroup.POST("/sections/:id", r.onboardingHandler.SaveSection)
		onboardingGroup.GET("/progress", r.onboardingHandler.Progress)
		onboardingGroup.POST("/w9", r.onboardingHandler.UploadW9)
		onboardingGroup.POST("/finalize", r.onboardingHandler.Finalize)
	}

	// Admin routes for managing affiliates and users
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/affiliates", r.affiliateHandler.ListAffiliates)
		adminGroup.POST("/affiliates", r.affiliateHandler.CreateAffiliate)
		adminGroup.GET("/affiliates/:id", r.affiliateHandler.GetAffiliate)
		adminGroup.GET("/affiliates/:id/invite-qr", r.affiliateHandler.InviteQR)
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.POST("/users", r.userHandler.CreateUser)
	}

	// Legacy routes from the previous portal generation redirect into the
	// consolidated onboarding flow.
	registerLegacyRedirects(e)
}

// registerLegacyRedirects maps retired affiliate portal paths onto the
// consolidated onboarding entry point. Path parameters are intentionally
// dropped: the flow resumes at the next incomplete section either way.
func registerLegacyRedirects(e *echo.Echo) {
	redirect := func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/onboarding")
	}

	e.GET("/affiliate/start", redirect)
	e.GET("/affiliate/review", redirect)
	e.GET("/affiliate/section/:id", redirect)
}
