package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds interactions the way Discord delivers them
// and runs them through NewInteractionContext, so option and custom ID
// parsing are exercised by handler tests too. Every With/As call rebuilds
// the embedded context.
type TestInteractionContext struct {
	*InteractionContext

	ctx        context.Context
	userID     string
	guildID    string
	command    string
	subcommand string
	options    []*discordgo.ApplicationCommandInteractionDataOption
	customID   string
	values     []string
	component  bool
}

func NewTestInteractionContext() *TestInteractionContext {
	t := &TestInteractionContext{
		ctx:     context.Background(),
		userID:  "test-user-123",
		guildID: "test-guild-123",
	}
	return t.rebuild()
}

// WithOption adds a command option. Strings become string options, numbers
// integer options carried as float64 like the gateway sends them.
func (t *TestInteractionContext) WithOption(name string, value any) *TestInteractionContext {
	opt := &discordgo.ApplicationCommandInteractionDataOption{Name: name}
	switch v := value.(type) {
	case string:
		opt.Type, opt.Value = discordgo.ApplicationCommandOptionString, v
	case int:
		opt.Type, opt.Value = discordgo.ApplicationCommandOptionInteger, float64(v)
	case float64:
		opt.Type, opt.Value = discordgo.ApplicationCommandOptionInteger, v
	case bool:
		opt.Type, opt.Value = discordgo.ApplicationCommandOptionBoolean, v
	default:
		opt.Type, opt.Value = discordgo.ApplicationCommandOptionString, value
	}
	t.options = append(t.options, opt)
	return t.rebuild()
}

func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.userID = userID
	return t.rebuild()
}

func (t *TestInteractionContext) WithContext(ctx context.Context) *TestInteractionContext {
	t.ctx = ctx
	return t.rebuild()
}

func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.component = false
	t.command = name
	t.subcommand = ""
	if len(subcommand) > 0 {
		t.subcommand = subcommand[0]
	}
	return t.rebuild()
}

// AsComponent makes a component click; values are select menu choices
func (t *TestInteractionContext) AsComponent(customID string, values ...string) *TestInteractionContext {
	t.component = true
	t.customID = customID
	t.values = values
	return t.rebuild()
}

func (t *TestInteractionContext) rebuild() *TestInteractionContext {
	i := &discordgo.Interaction{
		GuildID: t.guildID,
		Member:  &discordgo.Member{User: &discordgo.User{ID: t.userID}},
	}

	if t.component {
		i.Type = discordgo.InteractionMessageComponent
		i.Data = discordgo.MessageComponentInteractionData{
			CustomID: t.customID,
			Values:   t.values,
		}
	} else {
		options := t.options
		if t.subcommand != "" {
			options = []*discordgo.ApplicationCommandInteractionDataOption{{
				Name:    t.subcommand,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: t.options,
			}}
		}
		i.Type = discordgo.InteractionApplicationCommand
		i.Data = discordgo.ApplicationCommandInteractionData{
			Name:    t.command,
			Options: options,
		}
	}

	t.InteractionContext = NewInteractionContext(t.ctx, nil, &discordgo.InteractionCreate{Interaction: i})
	return t
}

// MockResponder records what the pipeline sends instead of calling Discord
type MockResponder struct {
	Responses []*Response
	Edits     []*Response
	FollowUps []*Response

	DeferErr   error
	RespondErr error
	EditErr    error

	deferredEphemeral []bool
	responded         bool
}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.deferredEphemeral = append(m.deferredEphemeral, ephemeral)
	return m.DeferErr
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	m.responded = true
	return m.RespondErr
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditErr
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	return &discordgo.Message{ID: "followup-1"}, nil
}

func (m *MockResponder) HasResponded() bool {
	return m.responded
}

func (m *MockResponder) IsDeferred() bool {
	return len(m.deferredEphemeral) > 0
}

// LastResponse is the most recent edit, or the most recent reply when the
// interaction was never deferred
func (m *MockResponder) LastResponse() *Response {
	if n := len(m.Edits); n > 0 {
		return m.Edits[n-1]
	}
	if n := len(m.Responses); n > 0 {
		return m.Responses[n-1]
	}
	return nil
}
