package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler processes the interactions it claims
type Handler interface {
	CanHandle(ctx *InteractionContext) bool
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc is a Handler that claims every interaction. Routers decide
// matching before a HandlerFunc is reached.
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

func (f HandlerFunc) CanHandle(*InteractionContext) bool { return true }

func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult is what a handler hands back to the pipeline. A nil Response
// with Deferred unset means the handler answered on its own.
type HandlerResult struct {
	Response        *Response
	Deferred        bool
	StopPropagation bool
}

// Response is the reply to one interaction
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral replies are only visible to the clicking user
	Ephemeral bool

	// Update edits the message the component lives on. Ignored for commands.
	Update bool
}

// Reply is a plain visible message
func Reply(content string) *Response {
	return &Response{Content: content}
}

// Notice is an ephemeral message
func Notice(content string) *Response {
	return &Response{Content: content, Ephemeral: true}
}

// ReplyEmbeds is a visible message made of embeds
func ReplyEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	return &Response{Embeds: embeds}
}

func (r *Response) Private() *Response {
	r.Ephemeral = true
	return r
}

func (r *Response) InPlace() *Response {
	r.Update = true
	return r
}
