package rulebook

import "github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"

// Skill is a named competency governed by one attribute
type Skill struct {
	Name      string           `json:"name"`
	Attribute shared.Attribute `json:"attribute"`
}
