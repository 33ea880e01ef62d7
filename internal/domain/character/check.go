package character

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/dnd-character-sheet/internal/dice"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
)

const (
	// DefaultDifficulty is the DC a new check session starts at
	DefaultDifficulty = 10

	checkDieSides = 20
)

// ErrUnknownSkill is returned when a check names a skill outside the catalog
var ErrUnknownSkill = errors.New("unknown skill")

// CheckResult is the outcome of one skill check
type CheckResult struct {
	Skill             string           `json:"skill"`
	Attribute         shared.Attribute `json:"attribute"`
	Difficulty        int              `json:"difficulty"`
	Roll              int              `json:"roll"`
	Rank              int              `json:"rank"`
	AttributeModifier int              `json:"attribute_modifier"`
	ModifierTotal     int              `json:"modifier_total"`
	Total             int              `json:"total"`
	Success           bool             `json:"success"`

	// Display only, they never change Success
	Natural20 bool `json:"natural_20"`
	Natural1  bool `json:"natural_1"`
}

// ResolveCheck rolls 1d20 and adds the skill rank plus the governing
// attribute's modifier. The check succeeds when the total meets or beats the
// difficulty.
func (l *SkillLedger) ResolveCheck(skillName string, difficulty int, roller dice.Roller) (*CheckResult, error) {
	skill, ok := l.rulebook.Skill(skillName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, skillName)
	}

	rolled, err := roller.Roll(1, checkDieSides, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to roll skill check: %w", err)
	}
	if len(rolled.Rolls) != 1 {
		return nil, fmt.Errorf("expected a single d%d, got %d dice", checkDieSides, len(rolled.Rolls))
	}

	roll := rolled.Rolls[0]
	if roll < 1 || roll > checkDieSides {
		return nil, fmt.Errorf("d%d rolled %d, outside 1-%d", checkDieSides, roll, checkDieSides)
	}
	rank := l.Rank(skill.Name)
	attrMod := l.attributes.Modifier(skill.Attribute)
	modTotal := rank + attrMod
	total := roll + modTotal

	return &CheckResult{
		Skill:             skill.Name,
		Attribute:         skill.Attribute,
		Difficulty:        difficulty,
		Roll:              roll,
		Rank:              rank,
		AttributeModifier: attrMod,
		ModifierTotal:     modTotal,
		Total:             total,
		Success:           total >= difficulty,
		Natural20:         roll == checkDieSides,
		Natural1:          roll == 1,
	}, nil
}

// CheckSession is the transient skill check state of a sheet. It is never
// persisted.
type CheckSession struct {
	SelectedSkill string       `json:"selected_skill"`
	Difficulty    int          `json:"difficulty"`
	Last          *CheckResult `json:"last,omitempty"`
}

func newCheckSession(defaultSkill string) *CheckSession {
	return &CheckSession{
		SelectedSkill: defaultSkill,
		Difficulty:    DefaultDifficulty,
	}
}

// Perform resolves a check for the selected skill and difficulty and records it
func (s *CheckSession) Perform(skills *SkillLedger, roller dice.Roller) (*CheckResult, error) {
	result, err := skills.ResolveCheck(s.SelectedSkill, s.Difficulty, roller)
	if err != nil {
		return nil, err
	}
	s.Last = result
	return result, nil
}
