// Package http provides HTTP handlers for the numeric service REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/catalog, /services/discover, /services/execute
//
// Tool failures (bad parameters, length mismatches) are returned as 200 with
// a Result whose success flag is false. Transport problems map to status codes:
// 400 for malformed bodies or tool IDs, 404 for unknown services.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
