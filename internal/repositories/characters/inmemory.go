package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
)

// InMemoryRepository keeps snapshots in process memory.
// Useful for testing and for running without a remote store.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*character.Snapshot
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		snapshots: make(map[string]*character.Snapshot),
	}
}

func (r *InMemoryRepository) Load(_ context.Context, ownerID string) (*character.Snapshot, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.snapshots[ownerID]
	if !exists {
		return nil, sheeterr.NotFoundf("no character stored for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}

	// Return a copy to avoid external modifications
	return snapshot.Clone(), nil
}

func (r *InMemoryRepository) Save(_ context.Context, ownerID string, snapshot *character.Snapshot) error {
	if ownerID == "" {
		return sheeterr.InvalidArgument("owner ID is required")
	}
	if snapshot == nil {
		return sheeterr.InvalidArgument("snapshot cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[ownerID] = snapshot.Clone()
	return nil
}

func (r *InMemoryRepository) ListOwners(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owners := make([]string, 0, len(r.snapshots))
	for owner := range r.snapshots {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners, nil
}
