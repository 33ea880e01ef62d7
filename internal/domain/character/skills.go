package character

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
)

const (
	// BaseSkillPoints is the skill budget at an Intelligence modifier of 0
	BaseSkillPoints = 10

	// SkillPointsPerIntModifier is added (or removed) per point of Intelligence modifier
	SkillPointsPerIntModifier = 4
)

// SkillLedger owns the skill ranks of one character. Its budget is derived
// from the live attribute ledger on every call.
type SkillLedger struct {
	rulebook   *rulebook.Rulebook
	attributes *AttributeLedger
	ranks      map[string]int
}

// NewSkillLedger creates a ledger with every catalog skill at rank 0
func NewSkillLedger(rb *rulebook.Rulebook, attributes *AttributeLedger) *SkillLedger {
	if rb == nil {
		panic("rulebook is required")
	}
	if attributes == nil {
		panic("attribute ledger is required")
	}

	return &SkillLedger{
		rulebook:   rb,
		attributes: attributes,
		ranks:      DefaultSkillRanks(rb),
	}
}

// DefaultSkillRanks returns a fresh mapping of every catalog skill to rank 0
func DefaultSkillRanks(rb *rulebook.Rulebook) map[string]int {
	skills := rb.Skills()
	ranks := make(map[string]int, len(skills))
	for _, skill := range skills {
		ranks[skill.Name] = 0
	}
	return ranks
}

// AvailablePoints is 10 + 4 * the Intelligence modifier
func (l *SkillLedger) AvailablePoints() int {
	return BaseSkillPoints + SkillPointsPerIntModifier*l.attributes.Modifier(shared.AttributeIntelligence)
}

// SpentPoints sums every current rank
func (l *SkillLedger) SpentPoints() int {
	spent := 0
	for _, rank := range l.ranks {
		spent += rank
	}
	return spent
}

// RemainingPoints is available minus spent. It can go negative when
// Intelligence drops after points were spent.
func (l *SkillLedger) RemainingPoints() int {
	return l.AvailablePoints() - l.SpentPoints()
}

// Adjust applies delta to one skill rank.
//
// Increases are gated once per call: any positive delta is refused when
// spent >= available, regardless of its size. Decreases always apply unless
// the rank would go negative.
func (l *SkillLedger) Adjust(skill string, delta int) bool {
	if _, ok := l.rulebook.Skill(skill); !ok {
		return false
	}

	if delta > 0 && l.SpentPoints() >= l.AvailablePoints() {
		return false
	}

	next := l.ranks[skill] + delta
	if next < 0 {
		return false
	}

	l.ranks[skill] = next
	return true
}

// Load replaces every rank with the given snapshot without re-validation
func (l *SkillLedger) Load(ranks map[string]int) {
	replaced := make(map[string]int, len(ranks))
	for skill, rank := range ranks {
		replaced[skill] = rank
	}
	l.ranks = replaced
}

// Rank returns the current rank of one skill
func (l *SkillLedger) Rank(skill string) int {
	return l.ranks[skill]
}

// Total is rank plus the governing attribute's modifier
func (l *SkillLedger) Total(skill rulebook.Skill) int {
	return l.ranks[skill.Name] + l.attributes.Modifier(skill.Attribute)
}

// Ranks returns a copy of the current mapping
func (l *SkillLedger) Ranks() map[string]int {
	out := make(map[string]int, len(l.ranks))
	for skill, rank := range l.ranks {
		out[skill] = rank
	}
	return out
}
