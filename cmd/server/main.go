package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carpentries-incubator/python-testing/internal/config"
	"github.com/carpentries-incubator/python-testing/internal/logging"
	"github.com/carpentries-incubator/python-testing/internal/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Server host")
	level := flag.String("log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development mode (console logs)")
	flag.Parse()

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Logging.Level = *level
	cfg.Logging.Development = *dev

	logger := newLogger(cfg.Logging)
	if err := run(cfg, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Server stopped")
	_ = logger.Sync()
}

// newLogger builds the configured logger, falling back to production defaults.
func newLogger(cfg config.LogConfig) *logging.Logger {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Level,
		Development: cfg.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("Invalid logging config, using defaults", zap.Error(err))
	}
	return logger
}

func run(cfg *config.Config, logger *logging.Logger) error {
	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
