package recommend

import "context"

// traceKey is unexported so callers go through WithTraceID.
type traceKey struct{}

// WithTraceID returns a child context carrying the request trace identifier
// used to correlate engine debug logs with access logs.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// TraceIDFromContext returns the trace identifier, or "" when none was set.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
