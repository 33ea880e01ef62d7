package middleware

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
)

// AuthChecker decides whether the caller may run the interaction. The string
// is shown to the caller when access is refused.
type AuthChecker func(ctx *core.InteractionContext) (bool, string)

// AuthConfig configures authorization behavior
type AuthConfig struct {
	Checkers []AuthChecker
}

// AuthorizationMiddleware refuses the interaction with an ephemeral reply
// when any check fails
func AuthorizationMiddleware(config *AuthConfig) core.Middleware {
	if config == nil {
		config = &AuthConfig{}
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			for _, check := range config.Checkers {
				if ok, message := check(ctx); !ok {
					return unauthorizedResponse(message), nil
				}
			}

			return next.Handle(ctx)
		})
	}
}

// ComponentOwner only lets the user named as the custom ID target press a
// component. Commands and components without a target pass.
func ComponentOwner() AuthChecker {
	return func(ctx *core.InteractionContext) (bool, string) {
		if !ctx.IsComponent() {
			return true, ""
		}
		customID, err := core.ParseCustomID(ctx.ComponentID())
		if err != nil || customID.Target == "" {
			return true, ""
		}
		if customID.Target != ctx.UserID {
			return false, "🔒 This sheet belongs to someone else. Use `/sheet show` to open your own."
		}
		return true, ""
	}
}

func unauthorizedResponse(message string) *core.HandlerResult {
	return &core.HandlerResult{
		Response:        core.Notice(message),
		StopPropagation: true,
	}
}
