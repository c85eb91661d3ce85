package shared

import (
	"context"

	"github.com/axiome/firstprinciples-api/internal/platform/logger"
	"github.com/google/uuid"
)

// SetTraceID adds a freshly generated trace ID to the context.
// The ID is stored where the logger's context handler finds it, so every
// record logged with the returned context carries it.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}
