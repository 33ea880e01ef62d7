package shared

import (
	"fmt"
	"strings"
)

// Attribute is a core character statistic. The string value is the name used
// on the wire by the remote character store.
type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Strength"
	AttributeDexterity    Attribute = "Dexterity"
	AttributeConstitution Attribute = "Constitution"
	AttributeIntelligence Attribute = "Intelligence"
	AttributeWisdom       Attribute = "Wisdom"
	AttributeCharisma     Attribute = "Charisma"
)

// Attributes is the attribute catalog in display order.
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Short returns the three letter abbreviation (Str, Dex, ...)
func (a Attribute) Short() string {
	if len(a) < 3 {
		return string(a)
	}
	return string(a[:3])
}

func (a Attribute) String() string {
	return string(a)
}

// IsValid reports whether the attribute is part of the catalog
func (a Attribute) IsValid() bool {
	for _, attr := range Attributes {
		if attr == a {
			return true
		}
	}
	return false
}

// ParseAttribute accepts either the full name or the short form, case-insensitively.
func ParseAttribute(s string) (Attribute, error) {
	for _, attr := range Attributes {
		if strings.EqualFold(string(attr), s) || strings.EqualFold(attr.Short(), s) {
			return attr, nil
		}
	}
	return AttributeNone, fmt.Errorf("unknown attribute: %q", s)
}
