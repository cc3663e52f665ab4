// Package types provides shared data structures for the numeric service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Callable tool definition
//   - Parameter: Tool parameter description
//   - Context: Caller metadata passed to providers
//   - Result: Standard tool result
//
// Request Types:
//   - ExecuteRequest: Tool execution over HTTP
//   - DiscoverRequest: Intent-based service discovery
package types
