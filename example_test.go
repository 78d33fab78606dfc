package dice_test

import (
	"fmt"

	"github.com/zephyrtronium/dice"
)

func ExampleRollString() {
	// Always roll the highest face.
	gen := dice.GeneratorFunc(func(max int) int { return max })
	h, err := dice.RollString("3d6+2-d4", gen)
	if err != nil {
		panic(err)
	}
	for _, r := range h.Results {
		fmt.Println(r)
	}
	fmt.Println(h, "=", h.Total)
	// Output:
	// 3d6 [6 6 6] = 18
	// d4 [4] = 4
	// 3d6+2-d4 = 16
}

func ExampleDiceAccumulator() {
	e, err := dice.ParseString("1d6 - 2d4 + 3d8*2")
	if err != nil {
		panic(err)
	}
	var acc dice.DiceAccumulator
	fmt.Println(acc.Transform(e))
	// Output:
	// [d6 -2d4 3d8]
}

func ExampleOutcomes() {
	e, err := dice.ParseString("3d6+d20")
	if err != nil {
		panic(err)
	}
	var acc dice.DiceAccumulator
	terms := acc.Transform(e)
	fmt.Println(dice.Outcomes(terms))
	fmt.Printf("%.3f bits\n", dice.Entropy(terms, 0))
	// Output:
	// 4320
	// 12.077 bits
}
