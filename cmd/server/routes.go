package main

import (
	"github.com/borantia/backend/internal/middleware"
	"github.com/borantia/backend/internal/models"
	"github.com/borantia/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for auth routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "borantia"})
	})

	// Uploaded images
	r.Static("/storage", svc.imageDir)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("", authLimiter.Middleware())
		{
			auth.POST("/register/user", svc.authHandler.RegisterUser)
			auth.POST("/register/organization", svc.authHandler.RegisterOrganization)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Posting list and detail are public; detail attaches the viewer's
		// apply entry when a user token is present.
		api.GET("/borantia-contents", svc.postingHandler.List)
		api.GET("/borantia-contents/:id", middleware.AuthOptional(), svc.postingHandler.Get)

		// External lookup proxies (public)
		api.GET("/geocoding", svc.searchHandler.Geocode)
		api.GET("/rakuten", svc.searchHandler.Products)
		api.GET("/rakuten-hotel", svc.searchHandler.Hotels)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			protected.POST("/logout", svc.authHandler.Logout)
			protected.POST("/images", svc.imageHandler.Upload)

			// Volunteer user routes
			userOnly := protected.Group("", middleware.RoleRequired(models.RoleUser))
			{
				userOnly.POST("/apply-entries", svc.applyEntryHandler.Submit)
				userOnly.DELETE("/apply-entries/:id", svc.applyEntryHandler.Cancel)
				userOnly.GET("/users/my-applications", svc.mypageHandler.MyApplications)
				userOnly.GET("/users/me", svc.profileHandler.GetUser)
				userOnly.PUT("/users/me", svc.profileHandler.UpdateUser)
			}

			// Organization routes
			orgOnly := protected.Group("", middleware.RoleRequired(models.RoleOrganization))
			{
				orgOnly.POST("/borantia-contents", svc.postingHandler.Create)
				orgOnly.PUT("/borantia-contents/:id", svc.postingHandler.Update)
				orgOnly.DELETE("/borantia-contents/:id", svc.postingHandler.Delete)
				orgOnly.POST("/apply-entries/:id/approve", svc.applyEntryHandler.Approve)
				orgOnly.POST("/apply-entries/:id/reject", svc.applyEntryHandler.Reject)
				orgOnly.GET("/organizations/my-borantia-contents", svc.mypageHandler.MyPostings)
				orgOnly.GET("/organizations/me", svc.profileHandler.GetOrganization)
				orgOnly.PUT("/organizations/me", svc.profileHandler.UpdateOrganization)
				orgOnly.GET("/system-logs", svc.systemLogHandler.List)
				orgOnly.GET("/system-logs/modules", svc.systemLogHandler.Modules)
			}
		}
	}
}
