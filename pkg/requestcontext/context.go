// Package requestcontext carries the request ID through a context. Middleware
// sets it; services and the upstream client read it without importing
// net/http code.
//
//	requestID := requestcontext.RequestID(ctx)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
package requestcontext

import "context"

type requestIDKey struct{}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}
