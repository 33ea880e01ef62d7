package middleware

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"go.uber.org/zap"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	Logger *zap.Logger

	// DefaultUserMessage is shown when no user-friendly message exists
	DefaultUserMessage string
}

func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		Logger:             zap.NewNop(),
		DefaultUserMessage: "An error occurred while processing your request.",
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies so they never
// reach the pipeline
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			message, internal := UserMessage(err, config.DefaultUserMessage)
			if internal {
				logger.Error("handler error",
					zap.String("route", ctx.Route()),
					zap.String("user_id", ctx.UserID),
					zap.Any("meta", sheeterr.GetMeta(err)),
					zap.Error(err))
			}

			return &core.HandlerResult{
				Response: core.Notice(message),
			}, nil
		})
	}
}

// UserMessage picks the text shown to the user for err and reports whether
// the error is unexpected and worth logging at error level
func UserMessage(err error, fallback string) (string, bool) {
	var handlerErr *core.HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.UserMessage, handlerErr.Internal()
	}

	var appErr *sheeterr.Error
	if !errors.As(err, &appErr) {
		return fallback, true
	}

	switch appErr.Code {
	case sheeterr.CodeInvalidArgument, sheeterr.CodeValidation:
		return fmt.Sprintf("❌ %s", appErr.Message), false
	case sheeterr.CodeNotFound:
		return fmt.Sprintf("❓ %s", appErr.Message), false
	case sheeterr.CodePermissionDenied:
		return "🔒 That sheet belongs to someone else.", false
	case sheeterr.CodeUnavailable:
		return "⚠️ The character store could not be reached. Your sheet is unchanged, try again shortly.", true
	default:
		return fallback, true
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered in handler",
						zap.String("route", ctx.Route()),
						zap.Any("panic", r),
						zap.Stack("stack"))

					result = &core.HandlerResult{
						Response: core.Notice("An unexpected error occurred. Please try again later."),
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}
