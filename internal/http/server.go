// Package http provides the HTTP server and route assembly for the service.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/user-secrets/internal/auth/http"
	"github.com/allisson/user-secrets/internal/config"
	"github.com/allisson/user-secrets/internal/metrics"
	secretsHTTP "github.com/allisson/user-secrets/internal/secrets/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	logger *slog.Logger
	db     *sql.DB
	// stopBackground cancels the server-lifetime context handed to the rate
	// limiter cleanup goroutines.
	stopBackground context.CancelFunc
}

// NewServer creates a new HTTP server with all routes and middleware wired.
// Read routes carry the read rate budget, write routes the stricter write
// budget; both are keyed per actor.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	secretHandler *secretsHTTP.SecretHandler,
	metricsProvider *metrics.Provider,
) *Server {
	serverCtx, stopBackground := context.WithCancel(context.Background())
	s := &Server{
		logger:         logger,
		db:             db,
		stopBackground: stopBackground,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints stay outside actor resolution.
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.ActorMiddleware(logger))

	var readLimiter, writeLimiter gin.HandlerFunc
	if cfg.RateLimitEnabled {
		readLimiter = authHTTP.RateLimitMiddleware(
			serverCtx,
			cfg.RateLimitReadRequestsPerSec,
			cfg.RateLimitReadBurst,
			logger,
		)
		writeLimiter = authHTTP.RateLimitMiddleware(
			serverCtx,
			cfg.RateLimitWriteRequestsPerSec,
			cfg.RateLimitWriteBurst,
			logger,
		)
	}

	registerSecretRoutes(v1, secretHandler, readLimiter, writeLimiter)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness, checking the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}

	if s.db == nil {
		components["database"] = "error"
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
	} else {
		components["database"] = "ok"
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// registerSecretRoutes wires the user secret routes onto the v1 group.
func registerSecretRoutes(
	v1 *gin.RouterGroup,
	handler *secretsHTTP.SecretHandler,
	readLimiter, writeLimiter gin.HandlerFunc,
) {
	read := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if readLimiter == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{readLimiter}, handlers...)
	}
	write := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if writeLimiter == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{writeLimiter}, handlers...)
	}

	v1.POST("/user-secrets", write(handler.CreateHandler)...)
	v1.GET("/user-secrets", read(handler.ListHandler)...)
	v1.DELETE("/user-secrets/:id", write(handler.DeleteHandler)...)
	// Reveal is a read with a body, POST keeps the claimed hash out of URLs and logs.
	v1.POST("/user-secrets/:id/reveal", read(handler.RevealHandler)...)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server and stops the background
// goroutines tied to the server lifetime.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.stopBackground()
	return s.server.Shutdown(ctx)
}
