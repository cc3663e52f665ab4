package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/carpentries-incubator/python-testing/internal/config"
	handlers "github.com/carpentries-incubator/python-testing/internal/http"
	"github.com/carpentries-incubator/python-testing/internal/logging"
	"github.com/carpentries-incubator/python-testing/internal/middleware"
	"github.com/carpentries-incubator/python-testing/internal/monitoring"
	"github.com/carpentries-incubator/python-testing/internal/providers/numeric"
	"github.com/carpentries-incubator/python-testing/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	registry := service.NewRegistry()
	if err := registerProviders(registry, logger.Logger); err != nil {
		return nil, err
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	s := &Server{
		cfg:      cfg,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
	s.router = s.setupRouter()
	return s, nil
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting numeric service", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) setupRouter() *gin.Engine {
	if !s.cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(s.logger.Logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	if s.cfg.RateLimit.Enabled {
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = s.cfg.RateLimit.RequestsPerSecond
		rl.Burst = s.cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))

		if s.cfg.RateLimit.GlobalRequestsPerSecond > 0 {
			router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: s.cfg.RateLimit.GlobalRequestsPerSecond,
				Burst:             s.cfg.RateLimit.GlobalBurst,
			}))
		}
	}

	if s.metrics != nil {
		router.Use(monitoring.Middleware(s.metrics))
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	h := handlers.NewHandlers(s.registry, s.metrics, s.logger.Logger)

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/services", h.ListServices)
	router.GET("/services/catalog", h.ExportCatalog)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	return router
}

func registerProviders(registry *service.Registry, logger *zap.Logger) error {
	providers := []service.Provider{
		numeric.NewProvider(logger),
	}

	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register provider %s: %w", p.Definition().ID, err)
		}
		logger.Info("Registered service", zap.String("service", p.Definition().ID))
	}

	stats := registry.Stats()
	logger.Info("Service registry ready",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)
	return nil
}
