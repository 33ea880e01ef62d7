package sheet

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
)

// Source records where the current ledger state came from
type Source string

const (
	SourceGateway Source = "gateway"
	SourceDefault Source = "default"
)

// View is a read-only picture of one sheet with every derived value computed
type View struct {
	OwnerID          string           `json:"owner_id"`
	Source           Source           `json:"source"`
	Attributes       []AttributeView  `json:"attributes"`
	AttributeTotal   int              `json:"attribute_total"`
	AttributeMax     int              `json:"attribute_max"`
	FocusedAttribute shared.Attribute `json:"focused_attribute"`
	Skills           []SkillView      `json:"skills"`
	SkillPoints      SkillPoints      `json:"skill_points"`
	Classes          []ClassSummary   `json:"classes"`
	Check            CheckView        `json:"check"`
}

type AttributeView struct {
	Attribute shared.Attribute `json:"attribute"`
	Score     int              `json:"score"`
	Modifier  int              `json:"modifier"`
}

type SkillView struct {
	Name      string           `json:"name"`
	Attribute shared.Attribute `json:"attribute"`
	Rank      int              `json:"rank"`
	Modifier  int              `json:"modifier"`
	Total     int              `json:"total"`
}

type SkillPoints struct {
	Available int `json:"available"`
	Spent     int `json:"spent"`
	Remaining int `json:"remaining"`
}

type ClassSummary struct {
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
}

type CheckView struct {
	SelectedSkill string                 `json:"selected_skill"`
	Difficulty    int                    `json:"difficulty"`
	Last          *character.CheckResult `json:"last,omitempty"`
}

// AdjustResult reports whether an adjustment passed the budget rules.
// A rejected adjustment is not an error; the sheet is simply unchanged.
type AdjustResult struct {
	Applied bool  `json:"applied"`
	Sheet   *View `json:"sheet"`
}

// ClassView lists one class's minimums next to the owner's scores
type ClassView struct {
	Name         string            `json:"name"`
	Eligible     bool              `json:"eligible"`
	Requirements []RequirementView `json:"requirements"`
}

type RequirementView struct {
	Attribute shared.Attribute `json:"attribute"`
	Minimum   int              `json:"minimum"`
	Score     int              `json:"score"`
	Met       bool             `json:"met"`
}

func buildView(ownerID string, e *entry) *View {
	sheet := e.sheet
	rb := sheet.Rulebook

	view := &View{
		OwnerID:          ownerID,
		Source:           e.source,
		AttributeTotal:   sheet.Attributes.TotalAssigned(),
		AttributeMax:     character.MaxAttributeTotal,
		FocusedAttribute: e.focused,
		SkillPoints: SkillPoints{
			Available: sheet.Skills.AvailablePoints(),
			Spent:     sheet.Skills.SpentPoints(),
			Remaining: sheet.Skills.RemainingPoints(),
		},
		Check: CheckView{
			SelectedSkill: sheet.Check.SelectedSkill,
			Difficulty:    sheet.Check.Difficulty,
			Last:          sheet.Check.Last,
		},
	}

	for _, attr := range rb.Attributes() {
		view.Attributes = append(view.Attributes, AttributeView{
			Attribute: attr,
			Score:     sheet.Attributes.Score(attr),
			Modifier:  sheet.Attributes.Modifier(attr),
		})
	}

	for _, skill := range rb.Skills() {
		view.Skills = append(view.Skills, SkillView{
			Name:      skill.Name,
			Attribute: skill.Attribute,
			Rank:      sheet.Skills.Rank(skill.Name),
			Modifier:  sheet.Attributes.Modifier(skill.Attribute),
			Total:     sheet.Skills.Total(skill),
		})
	}

	scores := sheet.Attributes.Scores()
	for _, class := range rb.Classes() {
		view.Classes = append(view.Classes, ClassSummary{
			Name:     class.Name,
			Eligible: class.Meets(scores),
		})
	}

	return view
}

func buildClassView(class rulebook.Class, scores map[shared.Attribute]int) *ClassView {
	view := &ClassView{
		Name:         class.Name,
		Eligible:     class.Meets(scores),
		Requirements: make([]RequirementView, 0, len(class.Requirements)),
	}
	for _, req := range class.Requirements {
		view.Requirements = append(view.Requirements, RequirementView{
			Attribute: req.Attribute,
			Minimum:   req.Minimum,
			Score:     scores[req.Attribute],
			Met:       scores[req.Attribute] >= req.Minimum,
		})
	}
	return view
}

// Skill returns the view row for a skill name
func (v *View) Skill(name string) (SkillView, bool) {
	for _, s := range v.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return SkillView{}, false
}

// Attribute returns the view row for an attribute
func (v *View) Attribute(attr shared.Attribute) (AttributeView, bool) {
	for _, a := range v.Attributes {
		if a.Attribute == attr {
			return a, true
		}
	}
	return AttributeView{}, false
}

// EligibleClasses lists the names of classes the sheet qualifies for
func (v *View) EligibleClasses() []string {
	names := make([]string, 0, len(v.Classes))
	for _, c := range v.Classes {
		if c.Eligible {
			names = append(names, c.Name)
		}
	}
	return names
}
