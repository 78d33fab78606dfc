package dice

// Transformer is an evaluation strategy over expression trees. Transform
// asks it to process each operand and to combine the results of each binary
// operation's operands. New strategies need no changes to Expr.
type Transformer[V any] interface {
	// Constant processes a constant operand.
	Constant(v int) (V, error)
	// Dice processes a dice operand.
	Dice(d Dice) (V, error)
	// Binary combines the transformed operands of a binary operation. kind is
	// always one of KindAdd, KindSub, KindMul, or KindDiv.
	Binary(kind Kind, left, right V) (V, error)
}

// Transform walks an expression depth first, left operand before right, and
// returns the transformer's result for the root. The first error from the
// transformer ends the walk.
func Transform[V any](e *Expr, t Transformer[V]) (V, error) {
	var zero V
	switch e.kind {
	case KindConstant:
		return t.Constant(e.value)
	case KindDice:
		return t.Dice(e.dice)
	case KindAdd, KindSub, KindMul, KindDiv:
		l, err := Transform(e.left, t)
		if err != nil {
			return zero, err
		}
		r, err := Transform(e.right, t)
		if err != nil {
			return zero, err
		}
		return t.Binary(e.kind, l, r)
	default:
		return zero, &NodeError{Kind: e.kind}
	}
}
