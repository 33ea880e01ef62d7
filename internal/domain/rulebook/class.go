package rulebook

import "github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"

// Requirement is the minimum score a class needs in one attribute
type Requirement struct {
	Attribute shared.Attribute `json:"attribute"`
	Minimum   int              `json:"minimum"`
}

type Class struct {
	Name         string        `json:"name"`
	Requirements []Requirement `json:"requirements"`
}

func (c Class) clone() Class {
	reqs := make([]Requirement, len(c.Requirements))
	copy(reqs, c.Requirements)
	return Class{Name: c.Name, Requirements: reqs}
}

// Meets reports whether every requirement is satisfied by the given scores.
// Attributes missing from scores count as 0.
func (c Class) Meets(scores map[shared.Attribute]int) bool {
	for _, req := range c.Requirements {
		if scores[req.Attribute] < req.Minimum {
			return false
		}
	}
	return true
}

// IsEligible reports whether the scores satisfy every minimum of the named
// class. Classes outside the catalog are never eligible.
func (r *Rulebook) IsEligible(className string, scores map[shared.Attribute]int) bool {
	class, ok := r.Class(className)
	if !ok {
		return false
	}
	return class.Meets(scores)
}

// RequirementsOf returns the class minimums in declaration order, nil for
// unknown classes.
func (r *Rulebook) RequirementsOf(className string) []Requirement {
	class, ok := r.Class(className)
	if !ok {
		return nil
	}
	return class.Requirements
}

// EligibleClasses lists the classes the scores qualify for, in catalog order
func (r *Rulebook) EligibleClasses(scores map[shared.Attribute]int) []string {
	eligible := make([]string, 0, len(r.classes))
	for _, c := range r.classes {
		if c.Meets(scores) {
			eligible = append(eligible, c.Name)
		}
	}
	return eligible
}
