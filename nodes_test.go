package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/dice"
)

func TestDiceString(t *testing.T) {
	cases := []struct {
		dice dice.Dice
		want string
	}{
		{dice.Dice{Quantity: 3, Sides: 6}, "3d6"},
		{dice.Dice{Quantity: 1, Sides: 20}, "d20"},
		{dice.Dice{Quantity: -1, Sides: 6}, "-1d6"},
		{dice.Dice{Quantity: 0, Sides: 6}, "0d6"},
		{dice.Dice{Quantity: -4, Sides: 8}, "-4d8"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.dice.String())
	}
}

func TestDiceReverse(t *testing.T) {
	d := dice.Dice{Quantity: 3, Sides: 6}
	assert.Equal(t, dice.Dice{Quantity: -3, Sides: 6}, d.Reverse())
	assert.Equal(t, d, d.Reverse().Reverse())
	assert.Equal(t, dice.Dice{Sides: 4}, dice.Dice{Sides: 4}.Reverse())
}

func TestExprString(t *testing.T) {
	d6 := dice.DiceTerm(dice.Dice{Quantity: 1, Sides: 6})
	cases := []struct {
		name string
		e    *dice.Expr
		want string
	}{
		{"constant", dice.Constant(7), "7"},
		{"negative", dice.Constant(-7), "-7"},
		{"dice", d6, "d6"},
		{"add", dice.Binary(dice.KindAdd, d6, dice.Constant(2)), "d6+2"},
		{"sub-negative", dice.Binary(dice.KindSub, dice.Constant(5), dice.Constant(-3)), "5--3"},
		{"nested", dice.Binary(dice.KindAdd, dice.Binary(dice.KindMul, d6, dice.Constant(2)), dice.Binary(dice.KindDiv, dice.Constant(9), dice.Constant(3))), "d6*2+9/3"},
		{"invalid", new(dice.Expr), "$$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.e.String())
		})
	}
}

func TestExprEqual(t *testing.T) {
	a := dice.Binary(dice.KindSub, dice.DiceTerm(dice.Dice{Quantity: 2, Sides: 4}), dice.Constant(1))
	b := dice.Binary(dice.KindSub, dice.DiceTerm(dice.Dice{Quantity: 2, Sides: 4}), dice.Constant(1))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))

	c := dice.Binary(dice.KindAdd, dice.DiceTerm(dice.Dice{Quantity: 2, Sides: 4}), dice.Constant(1))
	assert.False(t, a.Equal(c), "different operation")
	d := dice.Binary(dice.KindSub, dice.DiceTerm(dice.Dice{Quantity: 2, Sides: 6}), dice.Constant(1))
	assert.False(t, a.Equal(d), "different dice")
	e := dice.Binary(dice.KindSub, dice.DiceTerm(dice.Dice{Quantity: 2, Sides: 4}), dice.Constant(2))
	assert.False(t, a.Equal(e), "different constant")
	assert.False(t, a.Equal(nil))
	assert.False(t, dice.Constant(1).Equal(dice.DiceTerm(dice.Dice{Quantity: 1, Sides: 1})))

	var n *dice.Expr
	assert.True(t, n.Equal(nil))
}

func TestExprAccessors(t *testing.T) {
	l := dice.DiceTerm(dice.Dice{Quantity: 3, Sides: 6})
	r := dice.Constant(2)
	e := dice.Binary(dice.KindMul, l, r)
	assert.Equal(t, dice.KindMul, e.Kind())
	assert.Same(t, l, e.Left())
	assert.Same(t, r, e.Right())
	assert.Equal(t, dice.Dice{Quantity: 3, Sides: 6}, l.Dice())
	assert.Equal(t, 2, r.Value())
	assert.Nil(t, l.Left())
	assert.Nil(t, r.Right())
}

func TestBinaryPanics(t *testing.T) {
	one := dice.Constant(1)
	for _, k := range []dice.Kind{dice.KindNone, dice.KindConstant, dice.KindDice, dice.Kind(100)} {
		assert.Panics(t, func() { dice.Binary(k, one, one) }, "kind %v", k)
	}
	assert.Panics(t, func() { dice.Binary(dice.KindAdd, nil, one) })
	assert.Panics(t, func() { dice.Binary(dice.KindAdd, one, nil) })
}

func TestKind(t *testing.T) {
	cases := []struct {
		kind   dice.Kind
		name   string
		binary bool
		op     string
	}{
		{dice.KindNone, "None", false, ""},
		{dice.KindConstant, "Constant", false, ""},
		{dice.KindDice, "Dice", false, ""},
		{dice.KindAdd, "Add", true, "+"},
		{dice.KindSub, "Sub", true, "-"},
		{dice.KindMul, "Mul", true, "*"},
		{dice.KindDiv, "Div", true, "/"},
		{dice.Kind(42), "Kind(42)", false, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.kind.String())
		assert.Equal(t, c.binary, c.kind.Binary(), "%v", c.kind)
		assert.Equal(t, c.op, c.kind.Operator(), "%v", c.kind)
	}
}

// counter is a Transformer that counts nodes by variant.
type counter struct {
	constants, dice, binary int
}

func (c *counter) Constant(v int) (int, error) {
	c.constants++
	return 1, nil
}

func (c *counter) Dice(d dice.Dice) (int, error) {
	c.dice++
	return 1, nil
}

func (c *counter) Binary(kind dice.Kind, l, r int) (int, error) {
	c.binary++
	return l + r + 1, nil
}

func TestTransform(t *testing.T) {
	e, err := dice.ParseString("3d6+2*d4-1/5")
	if err != nil {
		t.Fatal(err)
	}
	var c counter
	n, err := dice.Transform[int](e, &c)
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, counter{constants: 3, dice: 2, binary: 4}, c)

	_, err = dice.Transform[int](dice.Binary(dice.KindAdd, dice.Constant(1), new(dice.Expr)), &c)
	assert.IsType(t, new(dice.NodeError), err)
}
