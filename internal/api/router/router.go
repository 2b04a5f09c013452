package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rohanp2002/project-x-backend/internal/api/handlers"
	"github.com/rohanp2002/project-x-backend/internal/api/middleware"
)

// Config holds router configuration
type Config struct {
	HealthHandler    *handlers.HealthHandler
	StockHandler     *handlers.StockHandler
	WatchlistHandler *handlers.WatchlistHandler
	AuthHandler      *handlers.AuthHandler

	AllowedOrigins []string
	AccessLogger   *zerolog.Logger
}

// New creates the HTTP router with the full middleware chain.
func New(cfg *Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(middleware.LoggingConfig{
		AccessLogger: cfg.AccessLogger,
		SkipPaths:    []string{"/"},
	}))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins)))

	// Health
	r.GET("/", cfg.HealthHandler.Health)
	r.GET("/health/ready", cfg.HealthHandler.Ready)

	// Stocks
	r.GET("/stocks/:symbol", cfg.StockHandler.Get)

	// Watchlist. Both slash variants are registered so clients built
	// against either form resolve without a redirect.
	r.POST("/watchlist", cfg.WatchlistHandler.Create)
	r.POST("/watchlist/", cfg.WatchlistHandler.Create)
	r.GET("/watchlist", cfg.WatchlistHandler.List)
	r.GET("/watchlist/", cfg.WatchlistHandler.List)
	r.DELETE("/watchlist/:id", cfg.WatchlistHandler.Delete)

	// Auth
	r.POST("/signup", cfg.AuthHandler.Signup)
	r.POST("/signup/", cfg.AuthHandler.Signup)
	r.POST("/token", cfg.AuthHandler.Token)

	return r
}
