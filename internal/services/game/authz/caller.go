package authz

import (
	"context"
	"strings"
)

// Caller identifies who issued a request.
type Caller struct {
	// ID is the caller's own character id.
	ID string
	// Staff marks callers holding a verified staff token.
	Staff bool
}

type callerKey struct{}

// WithCaller returns a context carrying caller.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	caller.ID = strings.TrimSpace(caller.ID)
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller attached to ctx.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	if ctx == nil {
		return Caller{}, false
	}
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
