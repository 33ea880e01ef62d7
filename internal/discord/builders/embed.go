package builders

import (
	"github.com/bwmarrin/discordgo"
)

// Discord rejects embeds past these limits
const (
	maxEmbedFields     = 25
	maxFieldValueRunes = 1024
)

// Palette
const (
	ColorSheet   = 0x7289da
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf1c40f
	ColorFailure = 0xe74c3c
)

// EmbedBuilder assembles a rich embed. Fields past the Discord limit are
// dropped and oversized values are truncated.
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

func NewEmbed(title string) *EmbedBuilder {
	return &EmbedBuilder{embed: &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: title,
	}}
}

func (b *EmbedBuilder) Description(text string) *EmbedBuilder {
	b.embed.Description = text
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Field appends a field; an empty value renders as a dash
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= maxEmbedFields {
		return b
	}
	if value == "" {
		value = "-"
	}
	if runes := []rune(value); len(runes) > maxFieldValueRunes {
		value = string(runes[:maxFieldValueRunes-1]) + "…"
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// NoticeEmbed is a short titled message in the given color
func NoticeEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return NewEmbed(title).Description(description).Color(color).Build()
}
