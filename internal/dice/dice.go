package dice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCount = errors.New("invalid dice count")
	ErrInvalidSides = errors.New("invalid dice size")
)

// RollResult contains the individual dice and the totals of one roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of dice without bonus

	// Only set for single d20 rolls
	IsCrit   bool
	IsFumble bool
}

func validate(count, sides int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	if sides < 1 {
		return ErrInvalidSides
	}
	return nil
}

// newResult builds a result from raw dice, flagging natural 20s and 1s on a d20
func newResult(rolls []int, sides, bonus int) *RollResult {
	raw := 0
	for _, r := range rolls {
		raw += r
	}

	result := &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
		RawTotal: raw,
	}

	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result
}

// String renders the roll as e.g. "1d20+3 [15] = 18"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	expr := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		expr += fmt.Sprintf("%+d", r.Bonus)
	}
	return fmt.Sprintf("%s %s = %d", expr, compact, r.Total)
}
