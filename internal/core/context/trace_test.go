package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewTraceContext_GeneratesMissingIDs(t *testing.T) {
	tc := NewTraceContext(context.Background(), "", "")

	assert.NotEmpty(t, tc.TraceID)
	assert.Len(t, tc.SpanID, 16)
	assert.NotEmpty(t, tc.RequestID)
	assert.NotEqual(t, tc.TraceID, tc.RequestID)
}

func TestNewTraceContext_KeepsIncomingIDs(t *testing.T) {
	tc := NewTraceContext(context.Background(), "trace-1", "req-1")

	assert.Equal(t, "trace-1", tc.TraceID)
	assert.Equal(t, "req-1", tc.RequestID)
}

func TestNewTraceContext_PrefersActiveSpan(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x0a, 0x0b, 0x0c, 0x0d, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c},
		SpanID:  trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	tc := NewTraceContext(ctx, "ignored", "req-2")

	assert.Equal(t, sc.TraceID().String(), tc.TraceID)
	assert.Equal(t, "0102030405060708", tc.SpanID)
	assert.Equal(t, "req-2", tc.RequestID)
}

func TestWithTrace(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetTrace(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithTrace(ctx, &TraceContext{TraceID: "t", RequestID: "r"})
	got := GetTrace(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "t", got.TraceID)
	assert.Equal(t, "r", GetRequestID(ctx))
}
