// Package server provides HTTP server setup and initialization for the numeric service.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (recovery, request ID, logging, CORS, rate limiting, metrics)
//   - Service provider registration
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Register service providers
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown when the run context is cancelled
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(ctx); err != nil {
//	    logger.Fatal("server error", zap.Error(err))
//	}
package server
