package ctxutil

import (
	"context"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// Caller is the authenticated principal of a request.
type Caller struct {
	ID   string
	Role string
}

// WithCaller stores the authenticated caller in the context.
func WithCaller(ctx context.Context, id, role string) context.Context {
	return context.WithValue(ctx, callerKey, Caller{ID: id, Role: role})
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing, has an empty id, or has the wrong type.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.ID == "" {
		return Caller{}, false
	}
	return c, true
}

// CallerIDFromCtx returns the caller id or an empty string for anonymous requests.
func CallerIDFromCtx(ctx context.Context) string {
	c, _ := CallerFromCtx(ctx)
	return c.ID
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
