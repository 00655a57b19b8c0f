package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/skullgate/internal/domain/state"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/config"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/logging"
	"github.com/GriffinCanCode/skullgate/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/skullgate/internal/runtime"
)

// Server is the debug HTTP surface of a running game
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *zap.Logger
	config  config.DebugConfig
	metrics *monitoring.Metrics
}

// New creates a debug server. Handlers reach game state only through
// dispatcher.
func New(cfg config.DebugConfig, development bool, machine *state.Machine, dispatcher *runtime.Dispatcher, metrics *monitoring.Metrics, log *zap.Logger) *Server {
	log = logging.OrNop(log)

	if !development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	if len(cfg.AllowOrigins) > 0 {
		router.Use(CORS(cfg.AllowOrigins))
	}

	handlers := NewHandlers(machine, dispatcher, log)
	router.GET("/health", handlers.Health)
	router.GET("/status", handlers.Status)
	router.POST("/save", RateLimit(cfg.SaveRate, cfg.SaveBurst), handlers.Save)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		router:  router,
		http:    &http.Server{Addr: cfg.Addr, Handler: router, ReadHeaderTimeout: 5 * time.Second},
		logger:  log,
		config:  cfg,
		metrics: metrics,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until Close is called. Run after Close returns nil at once.
func (s *Server) Run() error {
	s.logger.Info("Starting debug server", zap.String("addr", s.config.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("debug server: %w", err)
	}
	return nil
}

// Close gracefully shuts the server down
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down debug server...")
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down debug server", zap.Error(err))
		return fmt.Errorf("shutdown debug server: %w", err)
	}
	return nil
}
