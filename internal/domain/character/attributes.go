package character

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
)

// AttributeLedger owns the attribute scores of one character and enforces the
// total point budget on every adjustment.
type AttributeLedger struct {
	scores map[shared.Attribute]int
}

// NewAttributeLedger creates a ledger with every catalog attribute at the default score
func NewAttributeLedger() *AttributeLedger {
	return &AttributeLedger{scores: DefaultAttributeScores()}
}

// DefaultAttributeScores returns a fresh mapping of every attribute to the default score
func DefaultAttributeScores() map[shared.Attribute]int {
	scores := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		scores[attr] = DefaultAttributeScore
	}
	return scores
}

// Adjust applies delta to one attribute. The budget is checked against the raw
// delta first; only then is the resulting score floored at zero. Returns false
// and leaves the ledger untouched when the new total would exceed
// MaxAttributeTotal or the attribute is not in the catalog.
func (l *AttributeLedger) Adjust(attr shared.Attribute, delta int) bool {
	if !attr.IsValid() {
		return false
	}

	if l.TotalAssigned()+delta > MaxAttributeTotal {
		return false
	}

	l.scores[attr] = max(0, l.scores[attr]+delta)
	return true
}

// Load replaces every score with the given snapshot. Budgets are not
// re-validated; data from the sync gateway is trusted as-is.
func (l *AttributeLedger) Load(scores map[shared.Attribute]int) {
	replaced := make(map[shared.Attribute]int, len(scores))
	for attr, score := range scores {
		replaced[attr] = score
	}
	l.scores = replaced
}

// TotalAssigned sums every current score
func (l *AttributeLedger) TotalAssigned() int {
	total := 0
	for _, score := range l.scores {
		total += score
	}
	return total
}

// RemainingBudget is how many points can still be added before the cap
func (l *AttributeLedger) RemainingBudget() int {
	return MaxAttributeTotal - l.TotalAssigned()
}

// Score returns the current score of one attribute
func (l *AttributeLedger) Score(attr shared.Attribute) int {
	return l.scores[attr]
}

// Modifier returns the derived modifier of one attribute
func (l *AttributeLedger) Modifier(attr shared.Attribute) int {
	return Modifier(l.scores[attr])
}

// Scores returns a copy of the current mapping
func (l *AttributeLedger) Scores() map[shared.Attribute]int {
	out := make(map[shared.Attribute]int, len(l.scores))
	for attr, score := range l.scores {
		out[attr] = score
	}
	return out
}
