package dice

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	eofopt string
	maxqopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// events is the build sequence recognized so far.
	events []Event
	// wseof is a string containing the runes that trigger an EOF token from
	// the lexer.
	wseof string
	// maxq is the largest dice quantity allowed, or 0 for no limit.
	maxq int
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// None of them ends an expression where an operand is expected, e.g. at the
// beginning of an expression or following an operator.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		switch {
		case r == ',', r == ';', unicode.IsSpace(r):
			if have(r) {
				continue
			}
			v = append(v, r)
		default:
			panic("dice: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	return eofopt(v)
}

func (o eofopt) parseOption(p parsectx) parsectx {
	p.wseof = string(o)
	return p
}

// MaxQuantity limits the number of dice in any single dice literal. Literals
// with more dice are rejected with a *LimitError. A limit of 0 or less
// removes the limit.
func MaxQuantity(n int) ParseOption {
	return maxqopt(n)
}

func (o maxqopt) parseOption(p parsectx) parsectx {
	p.maxq = int(o)
	return p
}
