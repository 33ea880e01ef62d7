// Package uuid generates request IDs behind a mockable interface
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator is the source of request IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator produces random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns "<prefix>-1", "<prefix>-2", ... for deterministic tests
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

// IsValid reports whether s parses as a UUID
func IsValid(s string) bool {
	return uuid.Validate(s) == nil
}
