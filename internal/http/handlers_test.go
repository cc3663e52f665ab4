package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carpentries-incubator/python-testing/internal/service"
	"github.com/carpentries-incubator/python-testing/internal/testutil"
	"github.com/carpentries-incubator/python-testing/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{id: "numeric.sinc2d"},
		{id: "numeric.sinc2d.grid"},
		{id: "svc_1-a"},
		{id: "", wantErr: true},
		{id: "numeric sinc", wantErr: true},
		{id: "../etc", wantErr: true},
		{id: strings.Repeat("a", maxIDLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := validateID(tt.id, "tool_id")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("x: %w", service.ErrInvalidToolID)))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("x: %w", service.ErrServiceNotFound)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("boom")))
}

func TestExecuteServiceProviderError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := testutil.NewMockServiceProvider(t, "broken")
	provider.On("Execute", mock.Anything, "broken.test", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("backend unavailable"))

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(provider))

	router := gin.New()
	router.POST("/execute", NewHandlers(registry, nil, nil).ExecuteService)

	body, err := json.Marshal(types.ExecuteRequest{ToolID: "broken.test"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/execute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "backend unavailable")
	provider.AssertExpectations(t)
}

func TestExecuteServicePassesRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := testutil.NewMockServiceProvider(t, "echo")
	provider.On("Execute", mock.Anything, "echo.test", mock.Anything, mock.MatchedBy(func(appCtx *types.Context) bool {
		return appCtx != nil && appCtx.AppID != nil && *appCtx.AppID == "app-1"
	})).Return(&types.Result{Success: true, Data: map[string]interface{}{"result": 1.0}}, nil)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(provider))

	router := gin.New()
	router.POST("/execute", NewHandlers(registry, nil, nil).ExecuteService)

	appID := "app-1"
	body, err := json.Marshal(types.ExecuteRequest{ToolID: "echo.test", AppID: &appID})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/execute", bytes.NewReader(body)).WithContext(context.Background())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	provider.AssertExpectations(t)
}
