package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "metaforms/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestFromContext_AddsTraceFields(t *testing.T) {
	log, logs := observed()

	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})
	ctx = WithLogger(ctx, log)

	Info(ctx, "resolved form", "form_id", "invoice")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "resolved form", entries[0].Message)
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "invoice", fields["form_id"])
}

func TestWithComponent(t *testing.T) {
	log, logs := observed()

	ctx := WithLogger(context.Background(), log.WithComponent("registry"))
	Info(ctx, "form registry initialized", "forms", 88)
	Error(ctx, "catalog reload failed")

	entries := logs.FilterField(zap.String("component", "registry")).All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", OutputPaths: []string{"stdout"}})
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, NewNop().WithContext(context.Background()))
}
