package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InteractionContext is one interaction plus the request context it runs under
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	UserID    string
	GuildID   string
	ChannelID string

	Context context.Context

	subcommand string
	options    map[string]*discordgo.ApplicationCommandInteractionDataOption
	values     []string
}

func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		options:     make(map[string]*discordgo.ApplicationCommandInteractionDataOption),
	}

	// Guild interactions carry the user on Member, DMs on User
	switch {
	case i.Member != nil && i.Member.User != nil:
		ic.UserID = i.Member.User.ID
	case i.User != nil:
		ic.UserID = i.User.ID
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		ic.collectOptions(i.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.values = i.MessageComponentData().Values
	}

	return ic
}

func (ic *InteractionContext) collectOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.subcommand = opt.Name
			ic.collectOptions(opt.Options)
		default:
			ic.options[opt.Name] = opt
		}
	}
}

func (ic *InteractionContext) HasOption(name string) bool {
	_, ok := ic.options[name]
	return ok
}

// StringOption is empty when the option is missing or not a string
func (ic *InteractionContext) StringOption(name string) string {
	opt, ok := ic.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// IntOption is 0 when the option is missing or not an integer
func (ic *InteractionContext) IntOption(name string) int {
	opt, ok := ic.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	if _, isFloat := opt.Value.(float64); !isFloat {
		return 0
	}
	return int(opt.IntValue())
}

// Values are the choices of a select menu component
func (ic *InteractionContext) Values() []string {
	return ic.values
}

func (ic *InteractionContext) FirstValue() string {
	if len(ic.values) == 0 {
		return ""
	}
	return ic.values[0]
}

func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// ComponentID is the raw custom ID of a component interaction
func (ic *InteractionContext) ComponentID() string {
	if !ic.IsComponent() {
		return ""
	}
	return ic.Interaction.MessageComponentData().CustomID
}

func (ic *InteractionContext) CommandName() string {
	if !ic.IsCommand() {
		return ""
	}
	return ic.Interaction.ApplicationCommandData().Name
}

func (ic *InteractionContext) Subcommand() string {
	return ic.subcommand
}

// Route names the interaction for logs, e.g. "sheet/show" or "sheet:attr_inc"
func (ic *InteractionContext) Route() string {
	switch {
	case ic.IsCommand():
		if ic.subcommand != "" {
			return ic.CommandName() + "/" + ic.subcommand
		}
		return ic.CommandName()
	case ic.IsComponent():
		if parsed, err := ParseCustomID(ic.ComponentID()); err == nil {
			return parsed.Domain + ":" + parsed.Action
		}
		return ic.ComponentID()
	}
	return "unknown"
}
