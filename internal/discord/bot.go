package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/middleware"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/routers"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// CommandRegistrar is the part of a discordgo session used to publish commands
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Bot wires the interaction pipeline to the sheet service
type Bot struct {
	pipeline *core.Pipeline
	logger   *zap.Logger
}

type BotConfig struct {
	ServiceProvider *services.Provider
	Logger          *zap.Logger
}

func NewBot(cfg *BotConfig) *Bot {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("discord")

	pipeline := core.NewPipeline(&core.PipelineConfig{Logger: logger})
	pipeline.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(&middleware.LogConfig{Logger: logger}),
		middleware.ErrorMiddleware(&middleware.ErrorConfig{
			Logger:             logger,
			DefaultUserMessage: "An error occurred while processing your request.",
		}),
	)

	routers.NewSheetRouter(&routers.SheetRouterConfig{
		Pipeline: pipeline,
		Service:  cfg.ServiceProvider.SheetService,
	})

	return &Bot{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Commands lists every application command the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		routers.SheetCommand(),
	}
}

// RegisterCommands publishes the commands; an empty guildID registers them globally
func (b *Bot) RegisterCommands(s CommandRegistrar, appID, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	for _, cmd := range registered {
		b.logger.Info("registered command", zap.String("name", cmd.Name), zap.String("guild_id", guildID))
	}
	return nil
}

// InteractionHandler returns the discordgo handler for interaction events
func (b *Bot) InteractionHandler(ctx context.Context) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return b.pipeline.InteractionHandler(ctx)
}

// Pipeline exposes the interaction pipeline
func (b *Bot) Pipeline() *core.Pipeline {
	return b.pipeline
}
