package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHandler for testing
type MockHandler struct {
	canHandle bool
	result    *HandlerResult
	err       error
	called    bool
}

func (m *MockHandler) CanHandle(ctx *InteractionContext) bool {
	return m.canHandle
}

func (m *MockHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	m.called = true
	return m.result, m.err
}

func commandContext() *InteractionContext {
	return NewTestInteractionContext().
		WithUserID("test-user").
		AsCommand("test").
		InteractionContext
}

func TestPipeline_Register(t *testing.T) {
	pipeline := NewPipeline(nil)

	pipeline.Register(&MockHandler{}, &MockHandler{})

	assert.Equal(t, 2, pipeline.HandlerCount())
}

func TestPipeline_Dispatch_StopOnFirst(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()

	first := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("first")}}
	second := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("second")}}
	pipeline.Register(first, second)

	require.NoError(t, pipeline.Dispatch(commandContext(), responder))

	assert.True(t, first.called)
	assert.False(t, second.called)
	require.Len(t, responder.Responses, 1)
	assert.Equal(t, "first", responder.Responses[0].Content)
}

func TestPipeline_Dispatch_SkipsHandlersThatCannotHandle(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()

	skipped := &MockHandler{canHandle: false}
	taken := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("taken")}}
	pipeline.Register(skipped, taken)

	require.NoError(t, pipeline.Dispatch(commandContext(), responder))

	assert.False(t, skipped.called)
	assert.True(t, taken.called)
}

func TestPipeline_Dispatch_ContinueUntilStopPropagation(t *testing.T) {
	pipeline := NewPipeline(&PipelineConfig{RunAll: true})
	responder := NewMockResponder()

	first := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("1")}}
	second := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("2"), StopPropagation: true}}
	third := &MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("3")}}
	pipeline.Register(first, second, third)

	require.NoError(t, pipeline.Dispatch(commandContext(), responder))

	assert.True(t, first.called)
	assert.True(t, second.called)
	assert.False(t, third.called)
	assert.Len(t, responder.Responses, 2)
}

func TestPipeline_Dispatch_ErrorHandling(t *testing.T) {
	t.Run("handler error shown to user", func(t *testing.T) {
		pipeline := NewPipeline(nil)
		responder := NewMockResponder()

		pipeline.Register(&MockHandler{
			canHandle: true,
			err:       fmt.Errorf("wrapped: %w", NewValidationError("bad input")),
		})

		require.NoError(t, pipeline.Dispatch(commandContext(), responder))

		require.Len(t, responder.Responses, 1)
		assert.Equal(t, "bad input", responder.Responses[0].Content)
		assert.True(t, responder.Responses[0].Ephemeral)
	})

	t.Run("plain error gets generic message", func(t *testing.T) {
		pipeline := NewPipeline(nil)
		responder := NewMockResponder()

		pipeline.Register(&MockHandler{canHandle: true, err: errors.New("boom")})

		require.NoError(t, pipeline.Dispatch(commandContext(), responder))

		require.Len(t, responder.Responses, 1)
		assert.Equal(t, "An error occurred while processing your request.", responder.Responses[0].Content)
	})

	t.Run("custom error handler", func(t *testing.T) {
		testErr := errors.New("test error")
		pipeline := NewPipeline(&PipelineConfig{
			ErrorHandler: func(ctx *InteractionContext, err error) *HandlerResult {
				assert.Equal(t, testErr, err)
				return &HandlerResult{Response: Notice("custom")}
			},
		})
		responder := NewMockResponder()
		pipeline.Register(&MockHandler{canHandle: true, err: testErr})

		require.NoError(t, pipeline.Dispatch(commandContext(), responder))
		assert.Equal(t, "custom", responder.LastResponse().Content)
	})
}

func TestPipeline_Dispatch_DeferredUsesEdit(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()
	require.NoError(t, responder.Defer(true))

	pipeline.Register(&MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("late")}})

	require.NoError(t, pipeline.Dispatch(commandContext(), responder))

	assert.Empty(t, responder.Responses)
	require.Len(t, responder.Edits, 1)
	assert.Equal(t, "late", responder.Edits[0].Content)
}

func TestPipeline_Dispatch_SendFailure(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()
	responder.RespondErr = errors.New("discord down")

	pipeline.Register(&MockHandler{canHandle: true, result: &HandlerResult{Response: Reply("x")}})

	err := pipeline.Dispatch(commandContext(), responder)
	assert.ErrorContains(t, err, "discord down")
}

func TestPipeline_Dispatch_NoHandlers(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()

	require.NoError(t, pipeline.Dispatch(commandContext(), responder))

	require.Len(t, responder.Responses, 1)
	assert.True(t, responder.Responses[0].Ephemeral)
}

func TestPipeline_Middleware(t *testing.T) {
	pipeline := NewPipeline(nil)
	var executionOrder []string

	tracing := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				executionOrder = append(executionOrder, name+"_before")
				result, err := next.Handle(ctx)
				executionOrder = append(executionOrder, name+"_after")
				return result, err
			})
		}
	}

	pipeline.Use(tracing("middleware1"), tracing("middleware2"))
	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		executionOrder = append(executionOrder, "handler")
		return &HandlerResult{Response: Reply("test")}, nil
	}))

	require.NoError(t, pipeline.Dispatch(commandContext(), NewMockResponder()))

	assert.Equal(t, []string{
		"middleware1_before",
		"middleware2_before",
		"handler",
		"middleware2_after",
		"middleware1_after",
	}, executionOrder)
}

func TestMiddlewareChain(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}

	handler := MiddlewareChain(mw("a"), mw("b"))(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		return nil, nil
	}))
	_, err := handler.Handle(commandContext())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, order)
}
