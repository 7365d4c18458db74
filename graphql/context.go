package graphql

import "context"

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeySessionID contextKey = "sessionID"

// SessionIDFromContext returns the visitor id for the current request, or "".
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySessionID).(string); ok {
		return v
	}
	return ""
}

// WithSessionID attaches the visitor id to ctx.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, CtxKeySessionID, sessionID)
}
