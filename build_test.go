package dice_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/dice"
)

func TestBuild(t *testing.T) {
	c := dice.Constant
	d := func(q, s int) *dice.Expr { return dice.DiceTerm(dice.Dice{Quantity: q, Sides: s}) }
	bin := dice.Binary
	cases := []struct {
		name   string
		events []dice.Event
		want   *dice.Expr
	}{
		{"number", []dice.Event{dice.PushNumber("12")}, c(12)},
		{"signed-number", []dice.Event{dice.PushNumber("-12")}, c(-12)},
		{"dice", []dice.Event{dice.PushDice("", "3", "6")}, d(3, 6)},
		{"dice-default-quantity", []dice.Event{dice.PushDice("", "", "6")}, d(1, 6)},
		{"dice-negated", []dice.Event{dice.PushDice("-", "3", "6")}, d(-3, 6)},
		{"dice-plus", []dice.Event{dice.PushDice("+", "3", "6")}, d(3, 6)},
		{"dice-negated-implicit", []dice.Event{dice.PushDice("-", "", "6")}, d(1, 6)},
		{"dice-negated-one", []dice.Event{dice.PushDice("-", "1", "6")}, d(-1, 6)},
		{"dice-zero-sides", []dice.Event{dice.PushDice("", "3", "0")}, d(3, 0)},
		{
			"add-left-assoc",
			[]dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.PushNumber("3"), dice.ReduceAdd("+", "+")},
			bin(dice.KindAdd, bin(dice.KindAdd, c(1), c(2)), c(3)),
		},
		{
			"sub-left-assoc",
			[]dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.PushNumber("3"), dice.ReduceAdd("-", "-")},
			bin(dice.KindSub, bin(dice.KindSub, c(1), c(2)), c(3)),
		},
		{
			"mixed-order",
			[]dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.PushNumber("3"), dice.ReduceAdd("-", "+")},
			bin(dice.KindAdd, bin(dice.KindSub, c(1), c(2)), c(3)),
		},
		{
			"div-left-assoc",
			[]dice.Event{dice.PushNumber("8"), dice.PushNumber("4"), dice.PushNumber("2"), dice.ReduceMult("/", "*")},
			bin(dice.KindMul, bin(dice.KindDiv, c(8), c(4)), c(2)),
		},
		{
			"precedence",
			[]dice.Event{
				dice.PushDice("", "1", "20"),
				dice.PushDice("", "1", "4"), dice.PushNumber("2"), dice.ReduceMult("*"),
				dice.ReduceAdd("-"),
			},
			bin(dice.KindSub, d(1, 20), bin(dice.KindMul, d(1, 4), c(2))),
		},
		{
			"empty-group",
			[]dice.Event{dice.PushNumber("4"), dice.ReduceMult(), dice.ReduceAdd()},
			c(4),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := dice.Build(c.events)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(e), "want %v, got %v", c.want, e)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		events []dice.Event
		err    error
	}{
		{"empty", nil, new(dice.MalformedExpressionError)},
		{"two-roots", []dice.Event{dice.PushNumber("1"), dice.PushNumber("2")}, new(dice.MalformedExpressionError)},
		{"short", []dice.Event{dice.PushNumber("1"), dice.ReduceAdd("+", "+")}, new(dice.MalformedExpressionError)},
		{"short-one", []dice.Event{dice.PushNumber("1"), dice.ReduceAdd("+")}, new(dice.MalformedExpressionError)},
		{"reduce-first", []dice.Event{dice.ReduceMult()}, new(dice.MalformedExpressionError)},
		{"unknown-event", []dice.Event{{}}, new(dice.MalformedExpressionError)},
		{"bad-add-op", []dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.ReduceAdd("^")}, new(dice.OperatorError)},
		{"mult-in-add", []dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.ReduceAdd("*")}, new(dice.OperatorError)},
		{"add-in-mult", []dice.Event{dice.PushNumber("1"), dice.PushNumber("2"), dice.ReduceMult("+")}, new(dice.OperatorError)},
		{"bad-sign", []dice.Event{dice.PushDice("*", "1", "6")}, new(dice.OperatorError)},
		{"bad-number", []dice.Event{dice.PushNumber("1.5")}, new(dice.LiteralError)},
		{"bad-quantity", []dice.Event{dice.PushDice("", "x", "6")}, new(dice.LiteralError)},
		{"missing-sides", []dice.Event{dice.PushDice("", "3", "")}, new(dice.LiteralError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := dice.Build(c.events)
			require.Error(t, err, "built %v", e)
			assert.Nil(t, e)
			assert.IsType(t, c.err, err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestBuildMalformedDetail(t *testing.T) {
	_, err := dice.Build([]dice.Event{dice.PushNumber("1"), dice.ReduceAdd("+", "+")})
	var me *dice.MalformedExpressionError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Event)
	assert.Equal(t, 3, me.Want)
	assert.Equal(t, 1, me.Have)
	assert.False(t, me.End)

	_, err = dice.Build([]dice.Event{dice.PushNumber("1"), dice.PushNumber("2")})
	require.True(t, errors.As(err, &me))
	assert.True(t, me.End)
	assert.Equal(t, 2, me.Have)
}

func TestBuildMatchesParse(t *testing.T) {
	srcs := []string{"3d6+2", "1d20-1d4*2", "1-2-3", "8/4/2*3+-d6", "-7/2"}
	for _, src := range srcs {
		ev, err := dice.Events(strings.NewReader(src))
		require.NoError(t, err, src)
		a, err := dice.Build(ev)
		require.NoError(t, err, src)
		b, err := dice.ParseString(src)
		require.NoError(t, err, src)
		assert.True(t, a.Equal(b), "%q: %v vs %v", src, a, b)
	}
}
