package dice

import (
	"strconv"
	"strings"
)

// Expr is a node in the tree of a dice notation expression. Every node is
// itself an expression: a constant, a dice term, or a binary operation on two
// subexpressions. Exprs are immutable once built.
type Expr struct {
	kind Kind

	value int
	dice  Dice

	left  *Expr
	right *Expr
}

// Kind identifies the variant of an expression node.
type Kind int8

const (
	KindNone Kind = iota

	KindConstant // value
	KindDice     // dice

	KindAdd // left + right
	KindSub // left - right
	KindMul // left * right
	KindDiv // left / right, truncated
)

var kindnames = [...]string{
	KindNone:     "None",
	KindConstant: "Constant",
	KindDice:     "Dice",
	KindAdd:      "Add",
	KindSub:      "Sub",
	KindMul:      "Mul",
	KindDiv:      "Div",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Binary returns whether k is a binary operation.
func (k Kind) Binary() bool {
	switch k {
	case KindAdd, KindSub, KindMul, KindDiv:
		return true
	default:
		return false
	}
}

// Operator returns the notation symbol for a binary operation, or the empty
// string for any other kind.
func (k Kind) Operator() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	default:
		return ""
	}
}

// Constant creates a constant operand.
func Constant(v int) *Expr {
	return &Expr{kind: KindConstant, value: v}
}

// DiceTerm creates a dice operand.
func DiceTerm(d Dice) *Expr {
	return &Expr{kind: KindDice, dice: d}
}

// Binary creates a binary operation. Panics if kind is not a binary operation
// or either operand is nil.
func Binary(kind Kind, left, right *Expr) *Expr {
	if !kind.Binary() {
		panic("dice: Binary with non-binary kind " + kind.String())
	}
	if left == nil || right == nil {
		panic("dice: Binary " + kind.String() + " with nil operand")
	}
	return &Expr{kind: kind, left: left, right: right}
}

// Kind returns the variant of the node.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Value returns the value of a constant node. It is 0 for other kinds.
func (e *Expr) Value() int {
	return e.value
}

// Dice returns the dice of a dice node. It is the zero Dice for other kinds.
func (e *Expr) Dice() Dice {
	return e.dice
}

// Left returns the left operand of a binary operation, or nil for operands.
func (e *Expr) Left() *Expr {
	return e.left
}

// Right returns the right operand of a binary operation, or nil for operands.
func (e *Expr) Right() *Expr {
	return e.right
}

// Equal returns whether two expressions have the same structure and values.
// Node identity is irrelevant.
func (e *Expr) Equal(f *Expr) bool {
	if e == nil || f == nil {
		return e == f
	}
	if e.kind != f.kind {
		return false
	}
	switch e.kind {
	case KindConstant:
		return e.value == f.value
	case KindDice:
		return e.dice == f.dice
	case KindAdd, KindSub, KindMul, KindDiv:
		return e.left.Equal(f.left) && e.right.Equal(f.right)
	default:
		return true
	}
}

// String renders the expression in canonical notation, e.g. "3d6+2". Parsing
// the result produces an equal tree for any tree built by Parse.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case KindNone:
		// Invalid nodes use invalid characters.
		b.WriteString("$$")
	case KindConstant:
		b.WriteString(strconv.Itoa(e.value))
	case KindDice:
		b.WriteString(e.dice.String())
	case KindAdd, KindSub, KindMul, KindDiv:
		e.left.fmt(b)
		b.WriteString(e.kind.Operator())
		e.right.fmt(b)
	default:
		panic("dice: invalid node kind " + e.kind.String() + " after writing " + b.String())
	}
}
