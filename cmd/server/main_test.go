package main

import (
	"testing"

	"github.com/carpentries-incubator/python-testing/internal/config"
	"github.com/carpentries-incubator/python-testing/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerFallsBackToDefaults(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "chatty"})
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerUsesConfig(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "warn"})
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestRunReturnsListenError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "-1"

	err := run(cfg, &logging.Logger{Logger: zap.New(core)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on 127.0.0.1:-1")
	assert.Zero(t, logs.FilterMessage("Starting numeric service").Len())
}
