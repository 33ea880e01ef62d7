package character

import "github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"

// Snapshot is the full serialized state of both ledgers as exchanged with the
// sync gateway.
type Snapshot struct {
	Attributes map[shared.Attribute]int `json:"attributes"`
	Skills     map[string]int           `json:"skills"`
}

// Clone returns a deep copy
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	out := &Snapshot{
		Attributes: make(map[shared.Attribute]int, len(s.Attributes)),
		Skills:     make(map[string]int, len(s.Skills)),
	}
	for attr, score := range s.Attributes {
		out.Attributes[attr] = score
	}
	for skill, rank := range s.Skills {
		out.Skills[skill] = rank
	}
	return out
}
