// Package middleware provides HTTP middleware for the numeric service.
//
// Middleware stack includes:
//   - RequestID: Assigns or propagates X-Request-ID
//   - Logger: Structured request logging via zap
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting with idle-client eviction
//   - GlobalRateLimit: Single shared token bucket
//
// Example Usage:
//
//	router.Use(middleware.RequestID())
//	router.Use(middleware.Logger(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{RequestsPerSecond: 1000, Burst: 2000}))
package middleware
