package rulebook

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	"gopkg.in/yaml.v3"
)

//go:embed data/rules.yaml
var embeddedRules []byte

var defaultRulebook = MustParse(embeddedRules)

// Default returns the process-wide rulebook built from the embedded catalogs.
// It is immutable and safe to share.
func Default() *Rulebook {
	return defaultRulebook
}

// Rulebook holds the immutable skill and class catalogs
type Rulebook struct {
	skills     []Skill
	skillIndex map[string]int
	classes    []Class
	classIndex map[string]int
}

type rulesFile struct {
	Skills  []skillEntry `yaml:"skills"`
	Classes []classEntry `yaml:"classes"`
}

type skillEntry struct {
	Name      string `yaml:"name"`
	Attribute string `yaml:"attribute"`
}

type classEntry struct {
	Name         string             `yaml:"name"`
	Requirements []requirementEntry `yaml:"requirements"`
}

type requirementEntry struct {
	Attribute string `yaml:"attribute"`
	Minimum   int    `yaml:"minimum"`
}

// Parse builds a rulebook from YAML catalog data
func Parse(data []byte) (*Rulebook, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("rules.yaml: %w", err)
	}

	if len(file.Skills) == 0 {
		return nil, fmt.Errorf("rules.yaml: no skills defined")
	}

	rb := &Rulebook{
		skills:     make([]Skill, 0, len(file.Skills)),
		skillIndex: make(map[string]int, len(file.Skills)),
		classes:    make([]Class, 0, len(file.Classes)),
		classIndex: make(map[string]int, len(file.Classes)),
	}

	for _, entry := range file.Skills {
		if entry.Name == "" {
			return nil, fmt.Errorf("rules.yaml: skill with empty name")
		}
		if _, dup := rb.skillIndex[entry.Name]; dup {
			return nil, fmt.Errorf("rules.yaml: duplicate skill %q", entry.Name)
		}
		attr := shared.Attribute(entry.Attribute)
		if !attr.IsValid() {
			return nil, fmt.Errorf("rules.yaml: skill %q uses unknown attribute %q", entry.Name, entry.Attribute)
		}
		rb.skillIndex[entry.Name] = len(rb.skills)
		rb.skills = append(rb.skills, Skill{Name: entry.Name, Attribute: attr})
	}

	for _, entry := range file.Classes {
		if entry.Name == "" {
			return nil, fmt.Errorf("rules.yaml: class with empty name")
		}
		if _, dup := rb.classIndex[entry.Name]; dup {
			return nil, fmt.Errorf("rules.yaml: duplicate class %q", entry.Name)
		}
		class := Class{
			Name:         entry.Name,
			Requirements: make([]Requirement, 0, len(entry.Requirements)),
		}
		for _, req := range entry.Requirements {
			attr := shared.Attribute(req.Attribute)
			if !attr.IsValid() {
				return nil, fmt.Errorf("rules.yaml: class %q requires unknown attribute %q", entry.Name, req.Attribute)
			}
			if req.Minimum < 0 {
				return nil, fmt.Errorf("rules.yaml: class %q has negative minimum for %s", entry.Name, attr)
			}
			class.Requirements = append(class.Requirements, Requirement{Attribute: attr, Minimum: req.Minimum})
		}
		rb.classIndex[entry.Name] = len(rb.classes)
		rb.classes = append(rb.classes, class)
	}

	return rb, nil
}

// MustParse is like Parse but panics on error
func MustParse(data []byte) *Rulebook {
	rb, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return rb
}

// Attributes returns the attribute catalog
func (r *Rulebook) Attributes() []shared.Attribute {
	out := make([]shared.Attribute, len(shared.Attributes))
	copy(out, shared.Attributes)
	return out
}

// Skills returns the skill catalog in declaration order
func (r *Rulebook) Skills() []Skill {
	out := make([]Skill, len(r.skills))
	copy(out, r.skills)
	return out
}

// Skill looks up a skill by exact name
func (r *Rulebook) Skill(name string) (Skill, bool) {
	idx, ok := r.skillIndex[name]
	if !ok {
		return Skill{}, false
	}
	return r.skills[idx], true
}

// LookupSkill resolves user input to a catalog skill, ignoring case
func (r *Rulebook) LookupSkill(name string) (Skill, bool) {
	if skill, ok := r.Skill(name); ok {
		return skill, true
	}
	for _, skill := range r.skills {
		if strings.EqualFold(skill.Name, name) {
			return skill, true
		}
	}
	return Skill{}, false
}

// Classes returns the class catalog in declaration order
func (r *Rulebook) Classes() []Class {
	out := make([]Class, len(r.classes))
	for i, c := range r.classes {
		out[i] = c.clone()
	}
	return out
}

// Class looks up a class by name, ignoring case
func (r *Rulebook) Class(name string) (Class, bool) {
	if idx, ok := r.classIndex[name]; ok {
		return r.classes[idx].clone(), true
	}
	for _, c := range r.classes {
		if strings.EqualFold(c.Name, name) {
			return c.clone(), true
		}
	}
	return Class{}, false
}
