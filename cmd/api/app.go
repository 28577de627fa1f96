package main

import (
	"net/http"
	"os"

	"parkside-realty/internal/flash"
	"parkside-realty/internal/handlers"
	"parkside-realty/internal/middleware"
	"parkside-realty/internal/repositories"
	"parkside-realty/internal/services"
	"parkside-realty/internal/validators"
	"parkside-realty/pkg/config"
	"parkside-realty/pkg/database"
	"parkside-realty/pkg/logger"
	"parkside-realty/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App represents the application structure
type App struct {
	Config           *config.Config
	Router           *gin.Engine
	DB               *gorm.DB
	Flash            flash.Store
	AccountService   *services.AccountService
	HomeHandler      *handlers.HomeHandler
	ListingHandler   *handlers.ListingHandler
	PropertyHandler  *handlers.PropertyHandler
	DashboardHandler *handlers.DashboardHandler
	AuthHandler      *handlers.AuthHandler
	RateLimiter      *middleware.RateLimiter
	Server           *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeFlashStore()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection and schema
func (a *App) initializeDatabase() {
	db, err := database.Open(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.GlobalLogger.Errorf("Failed to migrate database: %v", err)
		os.Exit(1)
	}
	a.DB = db
}

// initialize the Redis-backed notice store
func (a *App) initializeFlashStore() {
	store, err := flash.NewRedisStore(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.Flash = store
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	accountRepo := repositories.NewAccountRepository(a.DB)
	profileRepo := repositories.NewProfileRepository(a.DB)
	propertyRepo := repositories.NewPropertyRepository(a.DB)

	// validators
	signupValidator := validators.NewSignupValidator()
	propertyValidator := validators.NewPropertyValidator()

	// services
	a.AccountService = services.NewAccountService(a.DB, accountRepo, profileRepo, signupValidator, a.Config.JWT.Secret)
	propertyService := services.NewPropertyService(propertyRepo, profileRepo, propertyValidator)
	listingService := services.NewListingService(propertyRepo, profileRepo)

	// handlers
	a.HomeHandler = handlers.NewHomeHandler(listingService, a.Flash)
	a.ListingHandler = handlers.NewListingHandler(listingService, a.Flash)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService, a.Flash)
	a.DashboardHandler = handlers.NewDashboardHandler(listingService, a.Flash)
	a.AuthHandler = handlers.NewAuthHandler(a.AccountService, a.Flash, a.Config)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.Close(a.DB)
	if store, ok := a.Flash.(*flash.RedisStore); ok {
		store.Close()
	}
}
