package services

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/dice"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"go.uber.org/zap"
)

// Provider holds all service instances
type Provider struct {
	SheetService sheet.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Gateway  sheet.Gateway
	Roller   dice.Roller
	Rulebook *rulebook.Rulebook
	Logger   *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if no gateway provided
	gateway := cfg.Gateway
	if gateway == nil {
		gateway = characters.NewInMemoryRepository()
	}

	return &Provider{
		SheetService: sheet.NewService(&sheet.ServiceConfig{
			Gateway:  gateway,
			Roller:   cfg.Roller,
			Rulebook: cfg.Rulebook,
			Logger:   cfg.Logger,
		}),
	}
}
