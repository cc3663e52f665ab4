/*
Package monitoring provides Prometheus metrics for the numeric service.

# Overview

Metrics live on a private registry owned by each Metrics value, so several
servers (or tests) can coexist in one process.

# Features

- HTTP request metrics (count, latency, response size) labelled by route
- Tool call metrics (count, duration, failures)
- Uptime gauge
- Snapshot totals for the JSON health endpoint

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "numeric", "numeric.sinc2d")
	// ... execute tool ...
	timer.Stop("success")
*/
package monitoring
