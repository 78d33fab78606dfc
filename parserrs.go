package dice

import "strconv"

// TokenError is an error indicating a token where the parser expected
// something else. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token that was found.
	Token string
	// Want describes what the parser expected, "operand" or "operator".
	Want string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "expected "+err.Want+", found "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression or operand that
// is missing, e.g. empty input or an operator at the end. It implements
// InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no operand at end")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// LimitError is an error indicating a dice literal with more dice than the
// parser allows. It implements InputError.
type LimitError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Max is the largest quantity allowed.
	Max int
}

func (err *LimitError) Error() string {
	return errpos(err.Col, "too many dice in "+err.Text+" (at most "+strconv.Itoa(err.Max)+")")
}

func (err *LimitError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error Events
// returns for invalid notation text implements InputError. Literals too large
// for int are only detected by Build, which returns a *LiteralError.
type InputError interface {
	error
	// Pos returns the position of the error in runes, counting from 1.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LimitError)(nil)
	_ InputError = (*LexError)(nil)
)
