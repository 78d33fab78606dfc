package dice

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Event is one step in building an expression tree. A front end recognizing
// notation emits events bottom up: operands as they are recognized, and a
// reduce event after the last operand of each additive or multiplicative
// group.
type Event struct {
	// Kind is the type of event.
	Kind EventKind
	// Text is the digits of a number, optionally preceded by a sign.
	Text string
	// Sign is the sign token preceding a dice literal, or the empty string.
	Sign string
	// Quantity is the digits before the d in a dice literal. It may be empty
	// to mean a single die.
	Quantity string
	// Sides is the digits after the d in a dice literal.
	Sides string
	// Operators is the operator tokens of a reduce event, in source order.
	Operators []string
}

// EventKind is the type of a builder event.
type EventKind int8

const (
	EventNone EventKind = iota
	// EventNumber pushes a constant operand.
	EventNumber
	// EventDice pushes a dice operand.
	EventDice
	// EventAddOp reduces an additive group.
	EventAddOp
	// EventMultOp reduces a multiplicative group.
	EventMultOp
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventNumber:
		return "Number"
	case EventDice:
		return "Dice"
	case EventAddOp:
		return "AddOp"
	case EventMultOp:
		return "MultOp"
	default:
		return "EventKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// PushNumber creates an event pushing a constant.
func PushNumber(text string) Event {
	return Event{Kind: EventNumber, Text: text}
}

// PushDice creates an event pushing a dice term. sign is "-", "+", or empty;
// quantity may be empty, in which case it is 1 regardless of sign.
func PushDice(sign, quantity, sides string) Event {
	return Event{Kind: EventDice, Sign: sign, Quantity: quantity, Sides: sides}
}

// ReduceAdd creates an event folding len(ops)+1 operands with additive
// operators.
func ReduceAdd(ops ...string) Event {
	return Event{Kind: EventAddOp, Operators: ops}
}

// ReduceMult creates an event folding len(ops)+1 operands with multiplicative
// operators.
func ReduceMult(ops ...string) Event {
	return Event{Kind: EventMultOp, Operators: ops}
}

// Build assembles the expression tree described by a sequence of events.
// Exactly one operand must remain after all events; that operand is the root.
func Build(events []Event) (*Expr, error) {
	var stack []*Expr
	for i, ev := range events {
		switch ev.Kind {
		case EventNumber:
			v, err := strconv.Atoi(ev.Text)
			if err != nil {
				return nil, &LiteralError{Event: i, Text: ev.Text, Err: err}
			}
			n := Constant(v)
			logrus.Debugf("dice: parsed number %v", n)
			stack = append(stack, n)
		case EventDice:
			d, err := buildDice(i, ev)
			if err != nil {
				return nil, err
			}
			n := DiceTerm(d)
			logrus.Debugf("dice: parsed dice %v", n)
			stack = append(stack, n)
		case EventAddOp, EventMultOp:
			k := len(ev.Operators) + 1
			if len(stack) < k {
				return nil, &MalformedExpressionError{Event: i, Want: k, Have: len(stack)}
			}
			n, err := fold(i, ev.Kind, stack[len(stack)-k:], ev.Operators)
			if err != nil {
				return nil, err
			}
			logrus.Debugf("dice: parsed %v operation %v", ev.Kind, n)
			stack = append(stack[:len(stack)-k], n)
		default:
			return nil, &MalformedExpressionError{Event: i, Kind: ev.Kind}
		}
	}
	if len(stack) != 1 {
		return nil, &MalformedExpressionError{Event: len(events), Want: 1, Have: len(stack), End: true}
	}
	return stack[0], nil
}

// fold combines operands left to right, so that the leftmost operator is the
// deepest node.
func fold(i int, group EventKind, operands []*Expr, ops []string) (*Expr, error) {
	n := operands[0]
	for j, op := range ops {
		kind := opkind(group, op)
		if kind == KindNone {
			return nil, &OperatorError{Event: i, Operator: op, Group: group}
		}
		logrus.Tracef("dice: %v operation", kind)
		n = Binary(kind, n, operands[j+1])
	}
	return n, nil
}

// opkind gets the node kind for an operator token in a group. If the token
// does not belong to the group, the result is KindNone.
func opkind(group EventKind, op string) Kind {
	switch group {
	case EventAddOp:
		switch op {
		case "+":
			return KindAdd
		case "-":
			return KindSub
		}
	case EventMultOp:
		switch op {
		case "*":
			return KindMul
		case "/":
			return KindDiv
		}
	}
	return KindNone
}

func buildDice(i int, ev Event) (Dice, error) {
	q := 1
	if ev.Quantity != "" {
		v, err := strconv.Atoi(ev.Quantity)
		if err != nil {
			return Dice{}, &LiteralError{Event: i, Text: ev.Quantity, Err: err}
		}
		q = v
	}
	switch ev.Sign {
	case "", "+": // do nothing
	case "-":
		// A sign on an implicit quantity is dropped.
		if ev.Quantity != "" {
			q = -q
		}
	default:
		return Dice{}, &OperatorError{Event: i, Operator: ev.Sign, Group: EventDice}
	}
	s, err := strconv.Atoi(ev.Sides)
	if err != nil {
		return Dice{}, &LiteralError{Event: i, Text: ev.Sides, Err: err}
	}
	return Dice{Quantity: q, Sides: s}, nil
}

// MalformedExpressionError is an error indicating an event sequence that does
// not describe exactly one tree.
type MalformedExpressionError struct {
	// Event is the index of the event that could not be applied, or the
	// number of events if the sequence ended with the wrong number of
	// operands.
	Event int
	// Want is the number of operands required.
	Want int
	// Have is the number of operands available.
	Have int
	// Kind is the kind of an event that is not understood. It is only
	// meaningful when Want is 0.
	Kind EventKind
	// End indicates that the sequence ended without exactly one root.
	End bool
}

func (err *MalformedExpressionError) Error() string {
	msg := "malformed expression at event " + strconv.Itoa(err.Event) + ": "
	if err.End {
		return msg + strconv.Itoa(err.Have) + " roots"
	}
	if err.Want == 0 {
		return msg + "unknown event " + err.Kind.String()
	}
	return msg + "need " + strconv.Itoa(err.Want) + " operands, have " + strconv.Itoa(err.Have)
}

// OperatorError is an error indicating an operator token that does not
// belong to the group it appears in.
type OperatorError struct {
	// Event is the index of the event containing the operator.
	Event int
	// Operator is the token that was not understood.
	Operator string
	// Group is the kind of event the operator appeared in.
	Group EventKind
}

func (err *OperatorError) Error() string {
	return "unsupported operator " + strconv.Quote(err.Operator) + " in " + err.Group.String() + " event " + strconv.Itoa(err.Event)
}

// LiteralError is an error indicating a number or dice literal whose digits
// are not an integer.
type LiteralError struct {
	// Event is the index of the event containing the literal.
	Event int
	// Text is the literal text.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *LiteralError) Error() string {
	return "invalid literal " + strconv.Quote(err.Text) + " in event " + strconv.Itoa(err.Event) + ": " + err.Err.Error()
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}
