package dice

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Outcomes returns the number of equally likely sequences of faces that
// rolling every term in dice can produce, i.e. the product of
// sides^|quantity|. The sign of a quantity does not matter. Terms without
// positive sides contribute nothing.
func Outcomes(dice []Dice) *big.Int {
	r := big.NewInt(1)
	var t, s, q big.Int
	for _, d := range dice {
		if d.Sides <= 0 {
			continue
		}
		n := d.Quantity
		if n < 0 {
			n = -n
		}
		s.SetInt64(int64(d.Sides))
		q.SetInt64(int64(n))
		r.Mul(r, t.Exp(&s, &q, nil))
	}
	return r
}

// Entropy returns the information in bits of one roll of every term in dice,
// computed to prec bits of precision. It is the base-2 logarithm of
// Outcomes(dice). If prec is 0, it is 64.
func Entropy(dice []Dice, prec uint) *big.Float {
	if prec == 0 {
		prec = 64
	}
	r := new(big.Float).SetPrec(prec)
	var x, s, ln2 big.Float
	x.SetPrec(prec)
	s.SetPrec(prec)
	ln2.SetPrec(prec).SetInt64(2)
	bigfloat.Log(&ln2, &ln2)
	for _, d := range dice {
		if d.Sides <= 1 {
			// d1 has one outcome, and invalid dice have none to speak of.
			continue
		}
		n := d.Quantity
		if n < 0 {
			n = -n
		}
		s.SetInt64(int64(d.Sides))
		bigfloat.Log(&x, &s)
		x.Mul(&x, s.SetInt64(int64(n)))
		r.Add(r, &x)
	}
	return r.Quo(r, &ln2)
}
