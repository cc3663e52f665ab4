package numeric

import (
	"context"
	"fmt"

	"github.com/carpentries-incubator/python-testing/internal/types"
	"go.uber.org/zap"
)

// ServiceID is the registry key and tool ID prefix for this provider.
const ServiceID = "numeric"

// Provider implements the numeric helper tools
type Provider struct {
	sinc   *SincOps
	linear *LinearOps
	stats  *StatsOps
	logger *zap.Logger
}

// NewProvider creates a numeric provider. A nil logger disables logging.
func NewProvider(logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		sinc:   &SincOps{},
		linear: &LinearOps{},
		stats:  &StatsOps{},
		logger: logger.Named(ServiceID),
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.sinc.GetTools()...)
	tools = append(tools, p.linear.GetTools()...)
	tools = append(tools, p.stats.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Numeric Service",
		Description: "Scalar numeric helpers (sinc, linear transforms, deviation)",
		Category:    types.CategoryNumeric,
		Capabilities: []string{
			"sinc",
			"linear",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	result, err := p.route(ctx, toolID, params, appCtx)
	if err == nil && result != nil && result.Success && !finiteData(result.Data) {
		result, err = Failure("result is not finite")
	}
	if err == nil && result != nil && !result.Success {
		p.logger.Debug("tool failed",
			zap.String("tool", toolID),
			zap.Stringp("error", result.Error),
			zap.String("request_id", requestID(appCtx)),
		)
	}
	return result, err
}

func (p *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Sinc
	case "numeric.sinc":
		return p.sinc.Sinc(ctx, params, appCtx)
	case "numeric.sinc2d":
		return p.sinc.Sinc2D(ctx, params, appCtx)
	case "numeric.sinc2d.grid":
		return p.sinc.Sinc2DGrid(ctx, params, appCtx)

	// Linear transforms
	case "numeric.a":
		return p.linear.A(ctx, params, appCtx)
	case "numeric.b":
		return p.linear.B(ctx, params, appCtx)
	case "numeric.c":
		return p.linear.C(ctx, params, appCtx)

	// Stats
	case "numeric.std":
		return p.stats.Std(ctx, params, appCtx)
	case "numeric.stdev":
		return p.stats.Stdev(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func requestID(appCtx *types.Context) string {
	if appCtx == nil {
		return ""
	}
	return appCtx.RequestID
}
