package services

import (
	"context"
	"log/slog"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/construtech/backoffice/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// writeAction names the capability a write path needs.
type writeAction string

const (
	actionCreate writeAction = "create"
	actionEdit   writeAction = "edit"
	actionDelete writeAction = "delete"
)

// Allowed reports whether the actor's role carries the capability for the
// given action. A false result is not an error: callers skip the write
// silently and report success-shaped emptiness to the client.
func (s *BaseService) Allowed(ctx context.Context, actor domain.User, action writeAction) bool {
	perms := domain.DerivePermissions(actor.Role)
	var ok bool
	switch action {
	case actionCreate:
		ok = perms.CanCreate
	case actionEdit:
		ok = perms.CanEdit
	case actionDelete:
		ok = perms.CanDelete
	}
	if !ok {
		metrics.PermissionDenials.WithLabelValues(string(action)).Inc()
		s.LogDebug(ctx, "Write skipped, role lacks capability",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)),
			slog.String("action", string(action)))
	}
	return ok
}
