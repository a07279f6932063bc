package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/google/uuid"
)

const ctxRequestIdKey = "REQUEST_ID"

func ctxWithRequestId(ctx context.Context, requestId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return middleware.CtxWithLogger(ctx, logger)
}

func (a *API) getLoggerOrBaseLogger(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.GetLoggerFromCtx(ctx); ok {
		return logger
	}
	return a.logger
}
