package middleware

import (
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"go.uber.org/zap"
)

// LogConfig configures logging behavior
type LogConfig struct {
	Logger *zap.Logger

	// LogResponses adds response details to the completion line
	LogResponses bool

	// RequestFilter filters which requests to log
	RequestFilter func(*core.InteractionContext) bool
}

// LoggingMiddleware logs each interaction with its route, caller and duration
func LoggingMiddleware(config *LogConfig) core.Middleware {
	logger := zap.NewNop()
	if config == nil {
		config = &LogConfig{}
	}
	if config.Logger != nil {
		logger = config.Logger
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if config.RequestFilter != nil && !config.RequestFilter(ctx) {
				return next.Handle(ctx)
			}

			fields := requestFields(ctx)
			logger.Debug("interaction received", fields...)

			start := time.Now()
			result, err := next.Handle(ctx)
			fields = append(fields, zap.Duration("duration", time.Since(start)))

			if err != nil {
				logger.Warn("interaction failed", append(fields, zap.Error(err))...)
				return result, err
			}

			if config.LogResponses {
				fields = append(fields, responseFields(result)...)
			}
			logger.Info("interaction completed", fields...)

			return result, nil
		})
	}
}

func requestFields(ctx *core.InteractionContext) []zap.Field {
	fields := []zap.Field{
		zap.String("route", ctx.Route()),
		zap.String("user_id", ctx.UserID),
	}
	if ctx.GuildID != "" {
		fields = append(fields, zap.String("guild_id", ctx.GuildID))
	}
	return fields
}

func responseFields(result *core.HandlerResult) []zap.Field {
	if result == nil || result.Response == nil {
		return []zap.Field{zap.String("response", "none")}
	}
	return []zap.Field{
		zap.Bool("ephemeral", result.Response.Ephemeral),
		zap.Bool("update", result.Response.Update),
		zap.Int("embeds", len(result.Response.Embeds)),
	}
}
