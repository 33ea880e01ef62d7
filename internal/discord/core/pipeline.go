package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	unknownInteractionMessage = "I don't know how to handle that command."
	genericFailureMessage     = "An error occurred while processing your request."
)

// Middleware wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler turns a handler error into the reply the user sees
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

type PipelineConfig struct {
	Logger *zap.Logger

	// ErrorHandler defaults to replying with the HandlerError message
	ErrorHandler ErrorHandler

	// RunAll keeps offering the interaction to later handlers until one sets
	// StopPropagation. By default the first matching handler wins.
	RunAll bool
}

// Pipeline offers each interaction to its handlers in registration order
type Pipeline struct {
	mu         sync.RWMutex
	handlers   []Handler
	middleware []Middleware

	logger  *zap.Logger
	runAll  bool
	errorFn ErrorHandler
}

func NewPipeline(cfg *PipelineConfig) *Pipeline {
	if cfg == nil {
		cfg = &PipelineConfig{}
	}

	p := &Pipeline{
		logger:  zap.NewNop(),
		runAll:  cfg.RunAll,
		errorFn: defaultErrorHandler,
	}
	if cfg.Logger != nil {
		p.logger = cfg.Logger
	}
	if cfg.ErrorHandler != nil {
		p.errorFn = cfg.ErrorHandler
	}
	p.logger = p.logger.Named("pipeline")

	return p
}

// Use adds middleware for handlers registered after the call
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	chain := MiddlewareChain(p.middleware...)
	for _, h := range handlers {
		p.handlers = append(p.handlers, chain(h))
	}
}

func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// InteractionHandler adapts the pipeline to discordgo's AddHandler. ctx is the
// parent of every interaction's context.
func (p *Pipeline) InteractionHandler(ctx context.Context) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := p.Dispatch(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i)); err != nil {
			p.logger.Error("interaction failed", zap.Error(err))
		}
	}
}

// Dispatch runs the matching handlers and sends their replies through
// responder. Unclaimed interactions get an ephemeral notice.
func (p *Pipeline) Dispatch(ictx *InteractionContext, responder InteractionResponder) error {
	p.mu.RLock()
	handlers := append([]Handler(nil), p.handlers...)
	p.mu.RUnlock()

	p.logger.Debug("dispatching interaction",
		zap.String("route", ictx.Route()),
		zap.String("user_id", ictx.UserID),
		zap.Int("handlers", len(handlers)))

	handled := false
	for _, handler := range handlers {
		if !handler.CanHandle(ictx) {
			continue
		}
		handled = true

		result, err := handler.Handle(ictx)
		if err != nil {
			result = p.errorFn(ictx, err)
		}
		if result == nil {
			if p.runAll {
				continue
			}
			break
		}

		if result.Response != nil {
			if err := send(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		if !p.runAll || result.StopPropagation {
			break
		}
	}

	if handled || responder.HasResponded() {
		return nil
	}

	p.logger.Warn("no handler for interaction", zap.String("route", ictx.Route()))
	return send(responder, &HandlerResult{Response: Notice(unknownInteractionMessage)})
}

func send(responder InteractionResponder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}
	return responder.Respond(result.Response)
}

func defaultErrorHandler(_ *InteractionContext, err error) *HandlerResult {
	message := genericFailureMessage
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		message = handlerErr.UserMessage
	}
	return &HandlerResult{Response: Notice(message)}
}

// MiddlewareChain composes middleware so the first one runs outermost
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
