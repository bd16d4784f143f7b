// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"synapse_backend/internal/auth"
	"synapse_backend/internal/config"
	"synapse_backend/internal/jobs"
	"synapse_backend/internal/listing"
	"synapse_backend/internal/middleware"
	"synapse_backend/internal/notification"
	"synapse_backend/internal/places"
	"synapse_backend/internal/platform/database"
	"synapse_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	userHandler         *user.Handler
	listingHandler      *listing.Handler
	notificationHandler *notification.Handler
	placesHandler       *places.Handler

	// Jobs
	listingCloseJob *jobs.ListingCloseJob
}

// NewServer creates a new instance of the application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	tokens *auth.TokenService,
	userHandler *user.Handler,
	listingHandler *listing.Handler,
	notificationHandler *notification.Handler,
	placesHandler *places.Handler,
	listingCloseJob *jobs.ListingCloseJob,
) (*Server, error) {
	if err := database.AutoMigrate(db, logger); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokens, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Synapse API is healthy!"})
	})

	v1 := router.Group("/api/v1")
	userHandler.RegisterRoutes(v1, authMW)
	listingHandler.RegisterRoutes(v1, authMW)
	notificationHandler.RegisterRoutes(v1, authMW)
	placesHandler.RegisterRoutes(v1)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:          httpServer,
		router:              router,
		cfg:                 cfg,
		logger:              logger,
		userHandler:         userHandler,
		listingHandler:      listingHandler,
		notificationHandler: notificationHandler,
		placesHandler:       placesHandler,
		listingCloseJob:     listingCloseJob,
	}, nil
}

// Start runs the HTTP server and the background scheduler. It blocks until
// the server stops.
func (s *Server) Start() error {
	if s.listingCloseJob != nil {
		if err := s.listingCloseJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start listing close job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

// Shutdown stops the scheduler and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.listingCloseJob != nil {
		s.listingCloseJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
