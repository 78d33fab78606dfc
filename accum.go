package dice

import "github.com/sirupsen/logrus"

// DiceAccumulator lists the dice terms of an expression. Terms on the right
// of a subtraction are reversed so that their quantity carries the sign.
//
// The sign is a single flag rather than a stack. Each binary operation sets
// it, after its left operand is walked and before its right operand is, to
// whether the operation is a subtraction; each constant clears it. Nested
// subtractions therefore do not compose: in "1-2-3d6" the 3d6 is reversed
// once, and in "5-2d4*d6" the d6 is not reversed at all because the
// multiplication clears the flag set by the subtraction.
//
// A DiceAccumulator is not safe to use concurrently.
type DiceAccumulator struct {
	negative bool
	dice     []Dice
}

// Reset clears the accumulated dice and the sign flag.
func (a *DiceAccumulator) Reset() {
	a.negative = false
	a.dice = a.dice[:0]
}

// Accumulate walks an expression, adding its dice terms to those already
// accumulated.
func (a *DiceAccumulator) Accumulate(e *Expr) {
	switch e.kind {
	case KindConstant:
		a.negative = false
	case KindDice:
		d := e.dice
		if a.negative {
			d = d.Reverse()
		}
		a.dice = append(a.dice, d)
	case KindAdd, KindSub, KindMul, KindDiv:
		a.Accumulate(e.left)
		a.negative = e.kind == KindSub
		a.Accumulate(e.right)
	default:
		logrus.Warnf("dice: skipping unsupported expression node %v", e.kind)
	}
}

// Value returns the accumulated dice. The result aliases the accumulator's
// storage until the next Reset.
func (a *DiceAccumulator) Value() []Dice {
	return a.dice
}

// Transform returns the dice terms of an expression in left-to-right order.
// The accumulator is reset first, and the result does not alias it.
func (a *DiceAccumulator) Transform(e *Expr) []Dice {
	a.Reset()
	a.Accumulate(e)
	r := make([]Dice, len(a.dice))
	copy(r, a.dice)
	return r
}
