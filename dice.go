package dice

import "strconv"

// Dice is a number of dice of the same size. A negative Quantity describes
// dice whose rolls are subtracted as a whole.
type Dice struct {
	// Quantity is the number of dice.
	Quantity int
	// Sides is the number of faces on each die. It should be positive.
	Sides int
}

// String formats the dice in notation, e.g. "3d6". The quantity is omitted
// when it is exactly 1.
func (d Dice) String() string {
	if d.Quantity == 1 {
		return "d" + strconv.Itoa(d.Sides)
	}
	return strconv.Itoa(d.Quantity) + "d" + strconv.Itoa(d.Sides)
}

// Reverse returns the dice with the sign of the quantity flipped.
func (d Dice) Reverse() Dice {
	return Dice{Quantity: -d.Quantity, Sides: d.Sides}
}
