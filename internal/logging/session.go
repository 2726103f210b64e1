package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type sessionIDKey struct{}

// NewSessionID returns a fresh, time-ordered session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// ContextWithSessionID stores the session id in ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id stored in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// FromContext returns the logger attached to ctx with the session id field
// added when one is present. It falls back to a disabled logger.
func FromContext(ctx context.Context) zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return *l
	}
	if id := SessionIDFromContext(ctx); id != "" {
		return l.With().Str("session_id", id).Logger()
	}
	return *l
}
