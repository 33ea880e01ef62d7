package builders

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/bwmarrin/discordgo"
)

// Discord layout limits
const (
	maxRowComponents = 5
	maxSelectOptions = 25
)

// ButtonSpec describes one button. Target and Args end up in the custom ID.
type ButtonSpec struct {
	Label    string
	Emoji    string
	Style    discordgo.ButtonStyle
	Action   string
	Target   string
	Args     []string
	Disabled bool
}

// SelectOption is one choice of a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Emoji       string
	Default     bool
}

// ComponentBuilder lays components out in action rows, wrapping full rows
type ComponentBuilder struct {
	ids  *core.CustomIDBuilder
	rows []discordgo.MessageComponent
	row  []discordgo.MessageComponent
}

func NewComponentBuilder(ids *core.CustomIDBuilder) *ComponentBuilder {
	if ids == nil {
		panic("custom ID builder is required")
	}
	return &ComponentBuilder{ids: ids}
}

func (b *ComponentBuilder) Button(spec ButtonSpec) *ComponentBuilder {
	button := discordgo.Button{
		Label:    spec.Label,
		Style:    spec.Style,
		Disabled: spec.Disabled,
		CustomID: b.ids.Button(spec.Action, spec.Target, spec.Args...),
	}
	if spec.Emoji != "" {
		button.Emoji = &discordgo.ComponentEmoji{Name: spec.Emoji}
	}

	if len(b.row) == maxRowComponents {
		b.NewRow()
	}
	b.row = append(b.row, button)
	return b
}

// SelectMenu adds a single-choice menu on a row of its own. Options past
// the Discord limit are dropped.
func (b *ComponentBuilder) SelectMenu(placeholder, action, target string, options []SelectOption) *ComponentBuilder {
	if len(options) > maxSelectOptions {
		options = options[:maxSelectOptions]
	}

	menuOptions := make([]discordgo.SelectMenuOption, 0, len(options))
	for _, opt := range options {
		menuOption := discordgo.SelectMenuOption{
			Label:       opt.Label,
			Value:       opt.Value,
			Description: opt.Description,
			Default:     opt.Default,
		}
		if opt.Emoji != "" {
			menuOption.Emoji = &discordgo.ComponentEmoji{Name: opt.Emoji}
		}
		menuOptions = append(menuOptions, menuOption)
	}

	minValues := 1
	b.NewRow()
	b.row = append(b.row, discordgo.SelectMenu{
		CustomID:    b.ids.Select(action, target),
		Placeholder: placeholder,
		Options:     menuOptions,
		MinValues:   &minValues,
		MaxValues:   1,
	})
	return b.NewRow()
}

// NewRow closes the current row if it has anything in it
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.row) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.row})
		b.row = nil
	}
	return b
}

func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	return b.NewRow().rows
}
