package dice

import (
	"io"
	"strconv"
	"strings"
	"time"
)

// Roller is a Transformer that rolls every dice term in an expression and
// computes the total. It records the result of each term it rolls. A Roller
// is not safe to use concurrently.
type Roller struct {
	gen     NumberGenerator
	results []RollResult
}

// NewRoller creates a roller drawing faces from gen. If gen is nil, the
// roller uses a RandGenerator seeded from the current time.
func NewRoller(gen NumberGenerator) *Roller {
	if gen == nil {
		gen = NewRandGenerator(time.Now().UnixNano())
	}
	return &Roller{gen: gen}
}

// RollHistory is the record of one evaluation of an expression.
type RollHistory struct {
	// Results holds the outcome of each dice term, in the order the terms
	// were rolled, which is left to right in the expression.
	Results []RollResult
	// Total is the value of the whole expression.
	Total int
	// Text is the canonical notation of the rolled expression.
	Text string
}

// String returns the expression text.
func (h RollHistory) String() string {
	return h.Text
}

// Roll evaluates an expression and returns its value along with every die
// rolled. The history from any previous use of r is discarded first.
func (r *Roller) Roll(e *Expr) (RollHistory, error) {
	r.results = nil
	total, err := Transform[int](e, r)
	if err != nil {
		r.results = nil
		return RollHistory{}, err
	}
	h := RollHistory{
		Results: r.results,
		Total:   total,
		Text:    e.String(),
	}
	r.results = nil
	return h, nil
}

// Eval evaluates an expression and returns its value.
func (r *Roller) Eval(e *Expr) (int, error) {
	h, err := r.Roll(e)
	if err != nil {
		return 0, err
	}
	return h.Total, nil
}

// Constant returns v.
func (r *Roller) Constant(v int) (int, error) {
	return v, nil
}

// Dice rolls d and records the result.
func (r *Roller) Dice(d Dice) (int, error) {
	res, err := RollDice(d, r.gen)
	if err != nil {
		return 0, err
	}
	r.results = append(r.results, res)
	return res.Total, nil
}

// Binary applies an arithmetic operation. Division truncates toward zero.
func (r *Roller) Binary(kind Kind, left, right int) (int, error) {
	switch kind {
	case KindAdd:
		return left + right, nil
	case KindSub:
		return left - right, nil
	case KindMul:
		return left * right, nil
	case KindDiv:
		if right == 0 {
			return 0, &DivisionByZeroError{Dividend: left}
		}
		return left / right, nil
	default:
		return 0, &NodeError{Kind: kind}
	}
}

var _ Transformer[int] = (*Roller)(nil)

// Roll is a shortcut to parse an expression and roll it with gen.
func Roll(src io.RuneScanner, gen NumberGenerator, opts ...ParseOption) (RollHistory, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return RollHistory{}, err
	}
	return NewRoller(gen).Roll(e)
}

// RollString is a shortcut to parse and roll a string expression.
func RollString(src string, gen NumberGenerator, opts ...ParseOption) (RollHistory, error) {
	return Roll(strings.NewReader(src), gen, opts...)
}

// DivisionByZeroError is an error from a division whose right operand
// evaluated to zero.
type DivisionByZeroError struct {
	// Dividend is the value of the left operand.
	Dividend int
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.Itoa(err.Dividend) + "/0"
}

// NodeError is an error indicating an expression node of a kind the walk
// does not know how to handle. Trees built by this package never contain
// such nodes; a zero Expr does.
type NodeError struct {
	// Kind is the unknown kind.
	Kind Kind
}

func (err *NodeError) Error() string {
	return "invalid expression node " + err.Kind.String()
}
