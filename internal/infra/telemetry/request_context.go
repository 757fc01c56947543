package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

type requestContextKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestContextKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	requestID, ok := ctx.Value(requestContextKey{}).(string)
	return requestID, ok && requestID != ""
}

func NewRequestID() string {
	return uuid.NewString()
}

// EnsureRequestID keeps an existing request id, adopts requestID, or
// generates a new one, in that order.
func EnsureRequestID(ctx context.Context, requestID string) (context.Context, string) {
	if existing, ok := RequestIDFromContext(ctx); ok && requestID == "" {
		return ctx, existing
	}
	if requestID == "" {
		requestID = NewRequestID()
	}
	return WithRequestID(ctx, requestID), requestID
}

func LoggerWithRequest(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base
	if logger == nil {
		logger = zap.NewNop()
	}
	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		return logger
	}
	return logger.With(RequestIDField(requestID))
}
