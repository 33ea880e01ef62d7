package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
)

// Repository persists one character snapshot per owner
type Repository interface {
	// Load returns the stored snapshot, or a not found error when the owner has none
	Load(ctx context.Context, ownerID string) (*character.Snapshot, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, ownerID string, snapshot *character.Snapshot) error

	// ListOwners returns every owner with a stored snapshot
	ListOwners(ctx context.Context) ([]string, error)
}

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
