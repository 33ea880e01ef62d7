package character

import "fmt"

const (
	// DefaultAttributeScore is the score every attribute starts at
	DefaultAttributeScore = 10

	// MaxAttributeTotal caps the sum of all attribute scores
	MaxAttributeTotal = 70
)

// Modifier derives the bonus for an attribute score: floor((score - 10) / 2).
// Go's integer division truncates toward zero, so odd negative differences
// are pulled down one step (9 -> -1, not 0).
func Modifier(score int) int {
	diff := score - 10
	mod := diff / 2
	if diff < 0 && diff%2 != 0 {
		mod--
	}
	return mod
}

// FormatModifier renders a modifier with an explicit sign, e.g. "+2" or "-1"
func FormatModifier(mod int) string {
	return fmt.Sprintf("%+d", mod)
}
