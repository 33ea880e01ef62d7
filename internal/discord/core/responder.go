package core

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

var (
	ErrAlreadyResponded = errors.New("interaction already responded to")
	ErrNotResponded     = errors.New("interaction has no response yet")
)

// InteractionResponder sends the replies of one interaction
type InteractionResponder interface {
	Defer(ephemeral bool) error
	Respond(response *Response) error
	// Edit rewrites the initial response
	Edit(response *Response) error
	FollowUp(response *Response) (*discordgo.Message, error)

	HasResponded() bool
	IsDeferred() bool
}

// InteractionAPI is the part of *discordgo.Session a responder needs
type InteractionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordResponder answers through the Discord interaction webhooks
type DiscordResponder struct {
	api         InteractionAPI
	interaction *discordgo.Interaction
	responded   bool
	deferred    bool
}

func NewDiscordResponder(api InteractionAPI, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{api: api, interaction: i.Interaction}
}

func (r *DiscordResponder) isComponent() bool {
	return r.interaction.Type == discordgo.InteractionMessageComponent
}

// Defer acknowledges the interaction. Components defer as a message update so
// the later Edit rewrites the sheet in place.
func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded {
		return ErrAlreadyResponded
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{},
	}
	if r.isComponent() {
		resp.Type = discordgo.InteractionResponseDeferredMessageUpdate
	}
	if ephemeral {
		resp.Data.Flags = discordgo.MessageFlagsEphemeral
	}

	if err := r.api.InteractionRespond(r.interaction, resp); err != nil {
		return err
	}
	r.responded, r.deferred = true, true
	return nil
}

// Respond sends the initial reply, or edits it when one was already sent.
// Update on a component interaction rewrites the clicked message.
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return r.Edit(response)
	}

	kind := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update && r.isComponent() {
		kind = discordgo.InteractionResponseUpdateMessage
	}

	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	if err := r.api.InteractionRespond(r.interaction, &discordgo.InteractionResponse{Type: kind, Data: data}); err != nil {
		return err
	}
	r.responded = true
	return nil
}

func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return ErrNotResponded
	}

	_, err := r.api.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &response.Embeds,
		Components: &response.Components,
	})
	return err
}

func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, ErrNotResponded
	}

	params := &discordgo.WebhookParams{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.api.FollowupMessageCreate(r.interaction, true, params)
}

func (r *DiscordResponder) HasResponded() bool { return r.responded }

func (r *DiscordResponder) IsDeferred() bool { return r.deferred }
