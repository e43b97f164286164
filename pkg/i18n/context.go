package i18n

import "context"

// Caller identifies the origin of a command invocation. Fields the host
// cannot supply stay empty; the resolver skips detection stages whose
// required field is missing.
type Caller struct {
	UserID    string
	GuildID   string
	ChannelID string
}

// callerContextKey is the key for storing the caller in a context.
type callerContextKey struct{}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerContextKey{}, c)
}

// CallerFromContext returns the caller stored in ctx, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerContextKey{}).(Caller)
	return c, ok
}
