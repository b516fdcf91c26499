// Package context carries per-request values between echo handlers and the layers below them.
package context

import (
	"context"
	"log/slog"

	"matjip/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyIdentity  ContextKey = "identity"

	HeaderXRequestID = echo.HeaderXRequestID
)

// SetRequestID stores id on the echo context for response envelopes.
func SetRequestID(c echo.Context, id string) {
	c.Set(string(KeyRequestID), id)
}

// GetRequestID returns the id set by SetRequestID, or a fresh uuid outside the request id middleware.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(string(KeyRequestID)).(string); id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, KeyRequestID, id)
}

// GetRequestIDFromContext returns "" when ctx has no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithIdentity attaches the user resolved by the auth middleware.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

func GetIdentity(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
