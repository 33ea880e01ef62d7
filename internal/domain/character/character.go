package character

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/dice"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
)

// Sheet bundles the two ledgers and the check session of one character.
// A sheet is a single logical actor; callers serialize access to it.
type Sheet struct {
	Rulebook   *rulebook.Rulebook
	Attributes *AttributeLedger
	Skills     *SkillLedger
	Check      *CheckSession
}

// NewSheet creates a sheet in the default state. A nil rulebook uses rulebook.Default().
func NewSheet(rb *rulebook.Rulebook) *Sheet {
	if rb == nil {
		rb = rulebook.Default()
	}

	attrs := NewAttributeLedger()
	skills := rb.Skills()
	defaultSkill := ""
	if len(skills) > 0 {
		defaultSkill = skills[0].Name
	}

	return &Sheet{
		Rulebook:   rb,
		Attributes: attrs,
		Skills:     NewSkillLedger(rb, attrs),
		Check:      newCheckSession(defaultSkill),
	}
}

// DefaultSnapshot is the state a sheet falls back to when nothing can be loaded
func DefaultSnapshot(rb *rulebook.Rulebook) *Snapshot {
	if rb == nil {
		rb = rulebook.Default()
	}
	return &Snapshot{
		Attributes: DefaultAttributeScores(),
		Skills:     DefaultSkillRanks(rb),
	}
}

// Load replaces both ledgers from a snapshot. The check session is untouched.
func (s *Sheet) Load(snapshot *Snapshot) {
	if snapshot == nil {
		snapshot = DefaultSnapshot(s.Rulebook)
	}
	s.Attributes.Load(snapshot.Attributes)
	s.Skills.Load(snapshot.Skills)
}

// Reset returns both ledgers to the default state
func (s *Sheet) Reset() {
	s.Load(DefaultSnapshot(s.Rulebook))
}

// Snapshot captures the current state of both ledgers
func (s *Sheet) Snapshot() *Snapshot {
	return &Snapshot{
		Attributes: s.Attributes.Scores(),
		Skills:     s.Skills.Ranks(),
	}
}

// SelectSkill changes the skill used by the next check. Unknown skills are refused.
func (s *Sheet) SelectSkill(name string) bool {
	skill, ok := s.Rulebook.LookupSkill(name)
	if !ok {
		return false
	}
	s.Check.SelectedSkill = skill.Name
	return true
}

// SetDifficulty changes the DC used by the next check
func (s *Sheet) SetDifficulty(dc int) {
	s.Check.Difficulty = dc
}

// PerformCheck resolves the session's check with the given random source
func (s *Sheet) PerformCheck(roller dice.Roller) (*CheckResult, error) {
	return s.Check.Perform(s.Skills, roller)
}

// EligibleClasses lists the classes the current scores qualify for
func (s *Sheet) EligibleClasses() []string {
	return s.Rulebook.EligibleClasses(s.Attributes.Scores())
}

// IsEligible reports whether the current scores qualify for a class
func (s *Sheet) IsEligible(className string) bool {
	return s.Rulebook.IsEligible(className, s.Attributes.Scores())
}
