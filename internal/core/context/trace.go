// Package context carries request-scoped values (trace and request ids).
package context

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// TraceContext contains request tracing information.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, tc *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}

// GetTrace returns TraceContext from context, or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// NewTraceContext builds a TraceContext for an incoming request.
// An active OpenTelemetry span wins over the supplied trace id;
// missing ids are generated.
func NewTraceContext(ctx context.Context, traceID, requestID string) *TraceContext {
	tc := &TraceContext{TraceID: traceID, RequestID: requestID}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		tc.TraceID = sc.TraceID().String()
		tc.SpanID = sc.SpanID().String()
	}
	if tc.TraceID == "" {
		tc.TraceID = uuid.New().String()
	}
	if tc.SpanID == "" {
		tc.SpanID = uuid.New().String()[:16]
	}
	if tc.RequestID == "" {
		tc.RequestID = uuid.New().String()
	}
	return tc
}
