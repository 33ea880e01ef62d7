package builders

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() *sheet.View {
	return &sheet.View{
		OwnerID: "42",
		Source:  sheet.SourceGateway,
		Attributes: []sheet.AttributeView{
			{Attribute: shared.AttributeStrength, Score: 10},
			{Attribute: shared.AttributeDexterity, Score: 10},
			{Attribute: shared.AttributeConstitution, Score: 10},
			{Attribute: shared.AttributeIntelligence, Score: 14, Modifier: 2},
			{Attribute: shared.AttributeWisdom, Score: 10},
			{Attribute: shared.AttributeCharisma, Score: 10},
		},
		AttributeTotal: 64,
		AttributeMax:   70,
		Skills: []sheet.SkillView{
			{Name: "Arcana", Attribute: shared.AttributeIntelligence, Rank: 2, Modifier: 2, Total: 4},
			{Name: "Athletics", Attribute: shared.AttributeStrength},
		},
		SkillPoints: sheet.SkillPoints{Available: 18, Spent: 2, Remaining: 16},
		Classes: []sheet.ClassSummary{
			{Name: "Barbarian"},
			{Name: "Wizard", Eligible: true},
		},
		Check: sheet.CheckView{Difficulty: 10},
	}
}

func buttons(components []discordgo.MessageComponent) map[string]discordgo.Button {
	out := make(map[string]discordgo.Button)
	for _, row := range components {
		for _, c := range row.(discordgo.ActionsRow).Components {
			if button, ok := c.(discordgo.Button); ok {
				parsed, err := core.ParseCustomID(button.CustomID)
				if err != nil {
					continue
				}
				out[parsed.Action] = button
			}
		}
	}
	return out
}

func TestSheetComponents_Layout(t *testing.T) {
	ids := core.NewCustomIDBuilder("sheet")
	components := SheetComponents(ids, testView())

	require.Len(t, components, 5)

	attrSelect := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "sheet:attr_select:42", attrSelect.CustomID)
	require.Len(t, attrSelect.Options, 6)
	assert.True(t, attrSelect.Options[0].Default, "strength is focused by default")
	assert.Equal(t, "Intelligence 14 (+2)", attrSelect.Options[3].Label)

	skillSelect := components[2].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "sheet:skill_select:42", skillSelect.CustomID)
	assert.Len(t, skillSelect.Options, 2)

	byAction := buttons(components)
	assert.Equal(t, "sheet:attr_inc:42:Strength", byAction[ActionAttributeInc].CustomID)
	assert.Equal(t, "sheet:attr_dec:42:Strength", byAction[ActionAttributeDec].CustomID)
	assert.False(t, byAction[ActionAttributeInc].Disabled)
	assert.True(t, byAction[ActionSkillInc].Disabled, "no skill selected")
	assert.True(t, byAction[ActionRoll].Disabled)
	assert.Equal(t, "sheet:save:42", byAction[ActionSave].CustomID)
	assert.Equal(t, "sheet:reload:42", byAction[ActionReload].CustomID)
	assert.Equal(t, "sheet:classes:42", byAction[ActionClasses].CustomID)
}

func TestSheetComponents_SelectedSkillAndBudgets(t *testing.T) {
	view := testView()
	view.FocusedAttribute = shared.AttributeIntelligence
	view.Check.SelectedSkill = "Arcana"
	view.AttributeTotal = 70
	view.SkillPoints.Remaining = 0

	byAction := buttons(SheetComponents(core.NewCustomIDBuilder("sheet"), view))

	assert.Equal(t, "sheet:attr_inc:42:Intelligence", byAction[ActionAttributeInc].CustomID)
	assert.True(t, byAction[ActionAttributeInc].Disabled, "attribute budget spent")
	assert.False(t, byAction[ActionAttributeDec].Disabled)
	assert.Equal(t, "sheet:skill_dec:42:Arcana", byAction[ActionSkillDec].CustomID)
	assert.False(t, byAction[ActionSkillDec].Disabled)
	assert.True(t, byAction[ActionSkillInc].Disabled, "no skill points left")
	assert.False(t, byAction[ActionRoll].Disabled)
}

func TestSheetEmbed(t *testing.T) {
	view := testView()
	view.Check.SelectedSkill = "Arcana"
	view.Check.Difficulty = 18
	view.Check.Last = &character.CheckResult{
		Skill:             "Arcana",
		Attribute:         shared.AttributeIntelligence,
		Difficulty:        18,
		Roll:              15,
		Rank:              2,
		AttributeModifier: 2,
		ModifierTotal:     4,
		Total:             19,
		Success:           true,
	}

	embed := SheetEmbed(view)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Attributes (64/70)", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "▶ **Str** 10 (+0)")
	assert.Contains(t, embed.Fields[1].Value, "✅ Wizard")
	assert.Contains(t, embed.Fields[1].Value, "❌ Barbarian")
	assert.Equal(t, "Skills (2/18 spent, 16 left)", embed.Fields[2].Name)
	assert.Contains(t, embed.Fields[2].Value, "🎯 Arcana (Int) rank 2, total +4")
	assert.Contains(t, embed.Fields[3].Value, "Skill: **Arcana** • DC 18")
	assert.Contains(t, embed.Fields[3].Value, "= **19** vs DC 18: ✅ Success")
	assert.NotContains(t, embed.Description, "defaults")

	view.Source = sheet.SourceDefault
	assert.Contains(t, SheetEmbed(view).Description, "starting from defaults")
}

func TestCheckResultLine_Naturals(t *testing.T) {
	line := CheckResultLine(&character.CheckResult{
		Skill:             "Stealth",
		Attribute:         shared.AttributeDexterity,
		Difficulty:        5,
		Roll:              1,
		AttributeModifier: -1,
		Total:             0,
		Natural1:          true,
	})

	assert.Equal(t, "🎲 Stealth: 1 (natural 1) +0 (rank) -1 (Dex) = **0** vs DC 5: ❌ Failure", line)
}

func TestClassEmbedAndComponents(t *testing.T) {
	view := &sheet.ClassView{
		Name: "Wizard",
		Requirements: []sheet.RequirementView{
			{Attribute: shared.AttributeIntelligence, Minimum: 14, Score: 12},
			{Attribute: shared.AttributeWisdom, Minimum: 9, Score: 10, Met: true},
		},
	}

	embed := ClassEmbed(view)
	assert.Equal(t, "🛡️ Wizard", embed.Title)
	assert.Equal(t, ColorWarning, embed.Color)
	assert.Contains(t, embed.Fields[0].Value, "❌ **Int** 12 / 14")
	assert.Contains(t, embed.Fields[0].Value, "✅ **Wis** 10 / 9")

	components := ClassComponents(core.NewCustomIDBuilder("sheet"), "42", "Wizard", testView().Classes)
	require.Len(t, components, 2)
	menu := components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "sheet:class_select:42", menu.CustomID)
	assert.True(t, menu.Options[1].Default)
	assert.Equal(t, "sheet:refresh:42", buttons(components)[ActionRefresh].CustomID)
}

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := NewComponentBuilder(core.NewCustomIDBuilder("sheet"))
	for i := 0; i < 7; i++ {
		b.Button(ButtonSpec{Label: "x", Style: discordgo.SecondaryButton, Action: ActionRoll, Target: "42"})
	}
	rows := b.Build()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 2)
}

func TestEmbedBuilder_Limits(t *testing.T) {
	b := NewEmbed("limits")
	for i := 0; i < 30; i++ {
		b.Field("f", "v", true)
	}
	assert.Len(t, b.Build().Fields, 25)

	embed := NewEmbed("long").
		Field("empty", "", false).
		Field("long", strings.Repeat("x", 2000), false).
		Build()
	assert.Equal(t, "-", embed.Fields[0].Value)
	assert.Len(t, []rune(embed.Fields[1].Value), 1024)
	assert.True(t, strings.HasSuffix(embed.Fields[1].Value, "…"))
}
