// Package dice implements tabletop dice notation.
//
// Notation looks like what you'd write on a character sheet: "3d6+2" rolls
// three six-sided dice and adds two, "1d20-1d4*2" subtracts twice a d4 from a
// d20. "d8" is the same as "1d8". Addition and subtraction bind less tightly
// than multiplication and division, and every operator is left-associative,
// so "1-2-3" is "(1-2)-3". Division truncates toward zero.
//
// Parsed expressions are trees that can be walked by any Transformer with
// Transform. Roller is the Transformer that rolls every dice term and keeps a
// history of the faces rolled. DiceAccumulator lists the dice terms an
// expression uses; it has its own walk rather than implementing Transformer,
// so call its Transform method directly.
//
// Trees can also be built without text from a stream of operand and operator
// events, which is what Parse does internally.
package dice
