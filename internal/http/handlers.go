package http

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/carpentries-incubator/python-testing/internal/catalog"
	"github.com/carpentries-incubator/python-testing/internal/middleware"
	"github.com/carpentries-incubator/python-testing/internal/monitoring"
	"github.com/carpentries-incubator/python-testing/internal/service"
	"github.com/carpentries-incubator/python-testing/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint.
const Version = "0.1.0"

const maxIDLength = 128

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Handlers contains HTTP request handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewHandlers creates a new handlers instance. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Numeric Service (Go)",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists registered services, optionally filtered by category
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if cat := c.Query("category"); cat != "" {
		tc := types.Category(cat)
		category = &tc
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// ExportCatalog renders the service catalog as JSON, YAML or TOML
func (h *Handlers) ExportCatalog(c *gin.Context) {
	format, err := catalog.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := catalog.Encode(h.registry.List(nil), format)
	if err != nil {
		h.logger.Error("catalog export failed", zap.String("format", string(format)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, format.ContentType(), data)
}

// DiscoverServices finds services relevant to an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services := h.registry.Discover(req.Intent, req.Limit)
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateID(req.ToolID, "tool_id"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AppID != nil {
		if err := validateID(*req.AppID, "app_id"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	appCtx := &types.Context{
		AppID:     req.AppID,
		RequestID: middleware.GetRequestID(c),
	}

	serviceID := serviceOf(req.ToolID)
	var timer *monitoring.Timer
	if h.metrics != nil {
		timer = monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		h.recordFailure(timer, serviceID, req.ToolID, "execute_error")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if !result.Success {
		h.recordFailure(timer, serviceID, req.ToolID, "invalid_params")
	} else if timer != nil {
		timer.Stop("success")
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) recordFailure(timer *monitoring.Timer, serviceID, toolID, errorType string) {
	if timer == nil {
		return
	}
	timer.Stop("failure")
	h.metrics.RecordToolError(serviceID, toolID, errorType)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidToolID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrServiceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func validateID(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(id) > maxIDLength {
		return fmt.Errorf("%s exceeds %d characters", field, maxIDLength)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters", field)
	}
	return nil
}

func serviceOf(toolID string) string {
	serviceID, _, _ := strings.Cut(toolID, ".")
	return serviceID
}
