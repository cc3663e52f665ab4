// Package service provides the tool-provider registry for the numeric service.
//
// The registry maintains a catalog of providers, routes tool execution by the
// service prefix of a tool ID ("numeric.sinc2d" -> "numeric"), and scores
// providers against free-text intents for discovery.
//
// Discovery Algorithm:
//   - Service ID or name in intent: +10
//   - Each description word in intent: +5
//   - Each capability in intent: +3
//   - Category in intent: +2
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(numeric.NewProvider(logger))
//	result, err := registry.Execute(ctx, "numeric.sinc2d", params, appCtx)
package service
