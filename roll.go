package dice

import (
	"strconv"
	"strings"
)

// RollResult is the outcome of rolling one dice term.
type RollResult struct {
	// Dice is the term that was rolled.
	Dice Dice
	// Rolls is the face of each die in the order generated. When the
	// quantity is negative, every face is negated.
	Rolls []int
	// Total is the sum of Rolls.
	Total int
}

// maxPrealloc bounds the capacity reserved for faces up front. Larger
// quantities grow the slice as they are rolled.
const maxPrealloc = 64

// RollDice rolls a dice term. Each die is one call to gen. A negative
// quantity rolls that many dice and negates every face, so the term is
// subtracted as a whole. Sides must be positive; otherwise the result is an
// *InvalidDiceError and gen is never called. Errors from gen are returned
// unchanged.
func RollDice(d Dice, gen NumberGenerator) (RollResult, error) {
	if d.Sides <= 0 {
		return RollResult{}, &InvalidDiceError{Dice: d}
	}
	n, sign := d.Quantity, 1
	if n < 0 {
		n, sign = -n, -1
	}
	r := RollResult{Dice: d, Rolls: make([]int, 0, min(n, maxPrealloc))}
	for i := 0; i < n; i++ {
		v, err := gen.Generate(d.Sides)
		if err != nil {
			return RollResult{}, err
		}
		v *= sign
		r.Rolls = append(r.Rolls, v)
		r.Total += v
	}
	return r, nil
}

// String formats the result like "3d6 [1 5 2] = 8".
func (r RollResult) String() string {
	var b strings.Builder
	b.WriteString(r.Dice.String())
	b.WriteString(" [")
	for i, v := range r.Rolls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString("] = ")
	b.WriteString(strconv.Itoa(r.Total))
	return b.String()
}

// InvalidDiceError is an error indicating dice without a positive number of
// sides.
type InvalidDiceError struct {
	// Dice is the invalid term.
	Dice Dice
}

func (err *InvalidDiceError) Error() string {
	return "invalid dice " + err.Dice.String() + ": sides must be positive"
}
