package builders

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"github.com/bwmarrin/discordgo"
)

// Component actions of the sheet domain
const (
	ActionAttributeSelect = "attr_select"
	ActionAttributeDec    = "attr_dec"
	ActionAttributeInc    = "attr_inc"
	ActionSkillSelect     = "skill_select"
	ActionSkillDec        = "skill_dec"
	ActionSkillInc        = "skill_inc"
	ActionRoll            = "roll"
	ActionClasses         = "classes"
	ActionClassSelect     = "class_select"
	ActionSave            = "save"
	ActionReload          = "reload"
	ActionRefresh         = "refresh"
)

// FocusOf returns the attribute the -/+ buttons act on, Strength when nothing is focused
func FocusOf(view *sheet.View) shared.Attribute {
	if view.FocusedAttribute != shared.AttributeNone {
		return view.FocusedAttribute
	}
	return shared.AttributeStrength
}

// SheetEmbed renders the full sheet
func SheetEmbed(view *sheet.View) *discordgo.MessageEmbed {
	focus := FocusOf(view)

	var attrs strings.Builder
	for _, a := range view.Attributes {
		marker := "  "
		if a.Attribute == focus {
			marker = "▶ "
		}
		fmt.Fprintf(&attrs, "%s**%s** %d (%s)\n", marker, a.Attribute.Short(), a.Score, character.FormatModifier(a.Modifier))
	}

	var skills strings.Builder
	for _, s := range view.Skills {
		marker := ""
		if s.Name == view.Check.SelectedSkill {
			marker = "🎯 "
		}
		fmt.Fprintf(&skills, "%s%s (%s) rank %d, total %s\n", marker, s.Name, s.Attribute.Short(), s.Rank, character.FormatModifier(s.Total))
	}

	embed := NewEmbed("📜 Character Sheet").
		Description(fmt.Sprintf("<@%s>%s", view.OwnerID, sourceNote(view.Source))).
		Color(ColorSheet).
		Field(fmt.Sprintf("Attributes (%d/%d)", view.AttributeTotal, view.AttributeMax), attrs.String(), true).
		Field("Classes", classList(view.Classes), true).
		Field(fmt.Sprintf("Skills (%d/%d spent, %d left)", view.SkillPoints.Spent, view.SkillPoints.Available, view.SkillPoints.Remaining), skills.String(), false).
		Field("Skill Check", CheckSummary(view.Check), false).
		Footer("Pick an attribute or skill, then use - / + to spend points")

	return embed.Build()
}

func sourceNote(source sheet.Source) string {
	if source == sheet.SourceDefault {
		return "\n*No saved sheet found, starting from defaults.*"
	}
	return ""
}

func classList(classes []sheet.ClassSummary) string {
	if len(classes) == 0 {
		return "None"
	}
	var b strings.Builder
	for _, c := range classes {
		icon := "❌"
		if c.Eligible {
			icon = "✅"
		}
		fmt.Fprintf(&b, "%s %s\n", icon, c.Name)
	}
	return b.String()
}

// CheckSummary describes the pending check and the last result
func CheckSummary(check sheet.CheckView) string {
	skill := check.SelectedSkill
	if skill == "" {
		skill = "none selected"
	}
	summary := fmt.Sprintf("Skill: **%s** • DC %d", skill, check.Difficulty)
	if check.Last != nil {
		summary += "\n" + CheckResultLine(check.Last)
	}
	return summary
}

// CheckResultLine formats one roll, e.g. "🎲 15 +2 (rank) +2 (Int) = 19 vs DC 18: Success"
func CheckResultLine(result *character.CheckResult) string {
	outcome := "❌ Failure"
	if result.Success {
		outcome = "✅ Success"
	}

	flavor := ""
	switch {
	case result.Natural20:
		flavor = " (natural 20!)"
	case result.Natural1:
		flavor = " (natural 1)"
	}

	return fmt.Sprintf("🎲 %s: %d%s %s (rank) %s (%s) = **%d** vs DC %d: %s",
		result.Skill,
		result.Roll,
		flavor,
		character.FormatModifier(result.Rank),
		character.FormatModifier(result.AttributeModifier),
		result.Attribute.Short(),
		result.Total,
		result.Difficulty,
		outcome)
}

// SheetComponents builds the five control rows of a sheet message
func SheetComponents(ids *core.CustomIDBuilder, view *sheet.View) []discordgo.MessageComponent {
	owner := view.OwnerID
	focus := FocusOf(view)
	selected := view.Check.SelectedSkill

	attrOptions := make([]SelectOption, 0, len(view.Attributes))
	for _, a := range view.Attributes {
		attrOptions = append(attrOptions, SelectOption{
			Label:   fmt.Sprintf("%s %d (%s)", a.Attribute, a.Score, character.FormatModifier(a.Modifier)),
			Value:   string(a.Attribute),
			Default: a.Attribute == focus,
		})
	}

	skillOptions := make([]SelectOption, 0, len(view.Skills))
	for _, s := range view.Skills {
		skillOptions = append(skillOptions, SelectOption{
			Label:       fmt.Sprintf("%s (%s)", s.Name, s.Attribute.Short()),
			Value:       s.Name,
			Description: fmt.Sprintf("rank %d, total %s", s.Rank, character.FormatModifier(s.Total)),
			Default:     s.Name == selected,
		})
	}

	// Nothing to adjust until a skill is chosen
	var skillArgs []string
	if selected != "" {
		skillArgs = []string{selected}
	}
	noSkill := selected == ""

	b := NewComponentBuilder(ids)
	b.SelectMenu("Choose an attribute", ActionAttributeSelect, owner, attrOptions)
	b.Button(ButtonSpec{
		Label:  fmt.Sprintf("- %s", focus.Short()),
		Style:  discordgo.SecondaryButton,
		Action: ActionAttributeDec,
		Target: owner,
		Args:   []string{string(focus)},
	})
	b.Button(ButtonSpec{
		Label:    fmt.Sprintf("+ %s", focus.Short()),
		Style:    discordgo.PrimaryButton,
		Action:   ActionAttributeInc,
		Target:   owner,
		Args:     []string{string(focus)},
		Disabled: view.AttributeTotal >= view.AttributeMax,
	})

	b.SelectMenu("Choose a skill", ActionSkillSelect, owner, skillOptions)
	b.Button(ButtonSpec{
		Label:    "- Rank",
		Style:    discordgo.SecondaryButton,
		Action:   ActionSkillDec,
		Target:   owner,
		Args:     skillArgs,
		Disabled: noSkill,
	})
	b.Button(ButtonSpec{
		Label:    "+ Rank",
		Style:    discordgo.PrimaryButton,
		Action:   ActionSkillInc,
		Target:   owner,
		Args:     skillArgs,
		Disabled: noSkill || view.SkillPoints.Remaining <= 0,
	})
	b.Button(ButtonSpec{
		Label:    "Roll",
		Emoji:    "🎲",
		Style:    discordgo.SuccessButton,
		Action:   ActionRoll,
		Target:   owner,
		Disabled: noSkill,
	})
	b.NewRow()

	b.Button(ButtonSpec{Label: "Classes", Emoji: "🛡️", Style: discordgo.SecondaryButton, Action: ActionClasses, Target: owner})
	b.Button(ButtonSpec{Label: "Save", Emoji: "💾", Style: discordgo.SuccessButton, Action: ActionSave, Target: owner})
	b.Button(ButtonSpec{Label: "Reload", Emoji: "🔄", Style: discordgo.SecondaryButton, Action: ActionReload, Target: owner})

	return b.Build()
}

// ClassEmbed renders one class's minimums against the owner's scores
func ClassEmbed(view *sheet.ClassView) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, req := range view.Requirements {
		icon := "❌"
		if req.Met {
			icon = "✅"
		}
		fmt.Fprintf(&b, "%s **%s** %d / %d\n", icon, req.Attribute.Short(), req.Score, req.Minimum)
	}
	if len(view.Requirements) == 0 {
		b.WriteString("No minimums")
	}

	embed := NewEmbed(fmt.Sprintf("🛡️ %s", view.Name))
	if view.Eligible {
		embed.Description("You meet every minimum for this class.").Color(ColorSuccess)
	} else {
		embed.Description("Some minimums are not met yet.").Color(ColorWarning)
	}

	return embed.Field("Requirements (score / minimum)", b.String(), false).Build()
}

// ClassComponents lets the owner flip between classes and return to the sheet
func ClassComponents(ids *core.CustomIDBuilder, ownerID, current string, classes []sheet.ClassSummary) []discordgo.MessageComponent {
	options := make([]SelectOption, 0, len(classes))
	for _, c := range classes {
		emoji := "❌"
		if c.Eligible {
			emoji = "✅"
		}
		options = append(options, SelectOption{
			Label:   c.Name,
			Value:   c.Name,
			Emoji:   emoji,
			Default: c.Name == current,
		})
	}

	return NewComponentBuilder(ids).
		SelectMenu("Choose a class", ActionClassSelect, ownerID, options).
		Button(ButtonSpec{Label: "Back to sheet", Emoji: "📜", Style: discordgo.SecondaryButton, Action: ActionRefresh, Target: ownerID}).
		Build()
}
