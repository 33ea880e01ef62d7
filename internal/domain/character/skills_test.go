package character_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgers(t *testing.T) (*character.AttributeLedger, *character.SkillLedger) {
	t.Helper()
	attrs := character.NewAttributeLedger()
	return attrs, character.NewSkillLedger(rulebook.Default(), attrs)
}

func TestSkillLedger_AvailablePoints(t *testing.T) {
	tests := []struct {
		name         string
		intelligence int
		want         int
	}{
		{name: "average intelligence", intelligence: 10, want: 10},
		{name: "intelligence 14", intelligence: 14, want: 18},
		{name: "intelligence 9", intelligence: 9, want: 6},
		{name: "intelligence 0", intelligence: 0, want: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, skills := newLedgers(t)
			attrs.Adjust(shared.AttributeIntelligence, tt.intelligence-10)
			require.Equal(t, tt.intelligence, attrs.Score(shared.AttributeIntelligence))

			assert.Equal(t, tt.want, skills.AvailablePoints())
		})
	}
}

func TestSkillLedger_AvailablePointsTracksAttributes(t *testing.T) {
	attrs, skills := newLedgers(t)
	assert.Equal(t, 10, skills.AvailablePoints())

	require.True(t, attrs.Adjust(shared.AttributeIntelligence, 2))
	assert.Equal(t, 14, skills.AvailablePoints())
}

func TestSkillLedger_Adjust(t *testing.T) {
	_, skills := newLedgers(t)

	for i := 0; i < 10; i++ {
		require.True(t, skills.Adjust("Stealth", 1), "point %d", i+1)
	}
	assert.Equal(t, 10, skills.SpentPoints())
	assert.Equal(t, 0, skills.RemainingPoints())

	// Budget exhausted: every increase is refused
	assert.False(t, skills.Adjust("Stealth", 1))
	assert.False(t, skills.Adjust("Arcana", 1))
	assert.Equal(t, 10, skills.Rank("Stealth"))
	assert.Equal(t, 0, skills.Rank("Arcana"))

	// Decreases still apply
	assert.True(t, skills.Adjust("Stealth", -1))
	assert.Equal(t, 9, skills.Rank("Stealth"))
}

func TestSkillLedger_RejectsNegativeRanks(t *testing.T) {
	_, skills := newLedgers(t)
	require.True(t, skills.Adjust("History", 1))
	before := skills.Ranks()

	assert.False(t, skills.Adjust("History", -2))
	assert.False(t, skills.Adjust("Nature", -1))
	assert.Equal(t, before, skills.Ranks())
}

func TestSkillLedger_IncreaseGateIsNotScaledByDelta(t *testing.T) {
	_, skills := newLedgers(t)
	require.True(t, skills.Adjust("Insight", 9))
	assert.Equal(t, 1, skills.RemainingPoints())

	// One point below the cap lets a larger delta land past it
	assert.True(t, skills.Adjust("Medicine", 5))
	assert.Equal(t, 14, skills.SpentPoints())
	assert.Equal(t, -4, skills.RemainingPoints())

	assert.False(t, skills.Adjust("Medicine", 1))
}

func TestSkillLedger_UnknownSkill(t *testing.T) {
	_, skills := newLedgers(t)
	assert.False(t, skills.Adjust("Basket Weaving", 1))
	assert.Equal(t, 0, skills.SpentPoints())
}

func TestSkillLedger_DefaultsAndTotal(t *testing.T) {
	attrs, skills := newLedgers(t)

	ranks := skills.Ranks()
	assert.Len(t, ranks, 18)
	for name, rank := range ranks {
		assert.Equal(t, 0, rank, name)
	}

	require.True(t, attrs.Adjust(shared.AttributeDexterity, 4))
	require.True(t, skills.Adjust("Acrobatics", 3))
	acrobatics, ok := rulebook.Default().Skill("Acrobatics")
	require.True(t, ok)
	assert.Equal(t, 5, skills.Total(acrobatics)) // 3 ranks + 2 from Dex 14
}

func TestSkillLedger_Load(t *testing.T) {
	_, skills := newLedgers(t)

	ranks := character.DefaultSkillRanks(rulebook.Default())
	ranks["Arcana"] = 12
	skills.Load(ranks)

	// Trusted even though it exceeds the budget of 10
	assert.Equal(t, 12, skills.SpentPoints())
	assert.Equal(t, ranks, skills.Ranks())
	assert.False(t, skills.Adjust("Arcana", 1))
}
