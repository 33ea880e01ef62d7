package sheet

//go:generate mockgen -destination=mock/mock.go -package=mocksheet -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
)

// Gateway loads and saves character snapshots in a remote store
type Gateway interface {
	Load(ctx context.Context, ownerID string) (*character.Snapshot, error)
	Save(ctx context.Context, ownerID string, snapshot *character.Snapshot) error
}

// Service owns one sheet per owner and is the only way surfaces touch the ledgers
type Service interface {
	// Open returns the owner's sheet, loading it from the gateway on first use
	Open(ctx context.Context, ownerID string) (*View, error)

	// Reload replaces both ledgers with a fresh gateway load
	Reload(ctx context.Context, ownerID string) (*View, error)

	// AdjustAttribute applies a budget-checked delta to one attribute
	AdjustAttribute(ctx context.Context, ownerID string, attr shared.Attribute, delta int) (*AdjustResult, error)

	// FocusAttribute records which attribute the -/+ controls act on
	FocusAttribute(ctx context.Context, ownerID string, attr shared.Attribute) (*View, error)

	// AdjustSkill applies a budget-checked delta to one skill rank
	AdjustSkill(ctx context.Context, ownerID, skill string, delta int) (*AdjustResult, error)

	// SelectSkill chooses the skill for the next check
	SelectSkill(ctx context.Context, ownerID, skill string) (*View, error)

	// SetDifficulty sets the DC for the next check
	SetDifficulty(ctx context.Context, ownerID string, difficulty int) (*View, error)

	// RollCheck resolves a check for the selected skill and difficulty
	RollCheck(ctx context.Context, ownerID string) (*View, error)

	// Save pushes the full snapshot to the gateway
	Save(ctx context.Context, ownerID string) error

	// ClassRequirements compares the owner's scores with one class's minimums
	ClassRequirements(ctx context.Context, ownerID, className string) (*ClassView, error)

	// Rulebook exposes the catalogs the service validates against
	Rulebook() *rulebook.Rulebook
}
