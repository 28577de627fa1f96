package main

import (
	"context"
	"net/http"
	"time"

	"parkside-realty/internal/middleware"
	"parkside-realty/pkg/database"
	"parkside-realty/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupOperationalRoutes()
	a.setupSiteRoutes()
}

// setupOperationalRoutes configures the health and metrics endpoints
func (a *App) setupOperationalRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.Ping(a.DB); err != nil {
			logger.GlobalLogger.Printf("Database ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Database unavailable"})
			return
		}

		if err := a.Flash.Ping(ctx); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupSiteRoutes configures the site routes
func (a *App) setupSiteRoutes() {
	// Public routes
	a.Router.GET("/", a.HomeHandler.Home)
	a.Router.GET("/properties/", a.ListingHandler.List)
	a.Router.GET("/properties/:id/", a.PropertyHandler.Detail)

	// Registration and login, rate limited
	accounts := a.Router.Group("/")
	accounts.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	{
		accounts.GET("/signup/client/", a.AuthHandler.ClientSignupPage)
		accounts.POST("/signup/client/", a.AuthHandler.ClientSignup)
		accounts.GET("/signup/realtor/", a.AuthHandler.RealtorSignupPage)
		accounts.POST("/signup/realtor/", a.AuthHandler.RealtorSignup)
		accounts.GET("/login/", a.AuthHandler.LoginPage)
		accounts.POST("/login/", a.AuthHandler.Login)
		accounts.POST("/logout/", a.AuthHandler.Logout)
	}

	// Realtor routes; authorization lives in the services so denials can
	// redirect with a notice instead of failing the request
	a.Router.GET("/dashboard/", a.DashboardHandler.Dashboard)
	a.Router.GET("/property/add/", a.PropertyHandler.AddPage)
	a.Router.POST("/property/add/", a.PropertyHandler.Add)
	a.Router.GET("/property/edit/:id/", a.PropertyHandler.EditPage)
	a.Router.POST("/property/edit/:id/", a.PropertyHandler.Edit)
	a.Router.GET("/property/delete/:id/", a.PropertyHandler.DeletePage)
	a.Router.POST("/property/delete/:id/", a.PropertyHandler.Delete)
}
