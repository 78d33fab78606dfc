package dice

import (
	"io"
	"strconv"
	"strings"
)

// Expr    = AddOp
// AddOp   = MultOp { ('+' | '-') MultOp }
// MultOp  = Operand { ('*' | '/') Operand }
// Operand = [ '+' | '-' ] ( num | dice )
// dice    = [ num ] ( 'd' | 'D' ) num

// Parse parses notation into an expression tree. The given options are
// applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	events, err := Events(src, opts...)
	if err != nil {
		return nil, err
	}
	return Build(events)
}

// ParseString is a shortcut to parse a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Events recognizes notation and returns the events that build its tree,
// without building it. Reduce events are emitted only for groups that have
// at least one operator.
func Events(src io.RuneScanner, opts ...ParseOption) ([]Event, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if err := parseadd(scan, &p); err != nil {
		return nil, err
	}
	tok, err := scan.next(p.wseof)
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenEOF {
		return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "operator"}
	}
	return p.events, nil
}

// parseadd parses an additive group. If there is no error, then the next
// token is pushed.
func parseadd(scan *lexer, p *parsectx) error {
	if err := parsemult(scan, p); err != nil {
		return err
	}
	var ops []string
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			scan.push(tok)
			break
		}
		if err := parsemult(scan, p); err != nil {
			return err
		}
		ops = append(ops, tok.text)
	}
	if len(ops) > 0 {
		p.events = append(p.events, ReduceAdd(ops...))
	}
	return nil
}

// parsemult parses a multiplicative group. If there is no error, then the
// next token is pushed.
func parsemult(scan *lexer, p *parsectx) error {
	if err := parseoperand(scan, p); err != nil {
		return err
	}
	var ops []string
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return err
		}
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			scan.push(tok)
			break
		}
		if err := parseoperand(scan, p); err != nil {
			return err
		}
		ops = append(ops, tok.text)
	}
	if len(ops) > 0 {
		p.events = append(p.events, ReduceMult(ops...))
	}
	return nil
}

// parseoperand parses a single signed operand. Whitespace normally lexed as
// EOF is ignored, since an operand is required here.
func parseoperand(scan *lexer, p *parsectx) error {
	tok, err := scan.next("")
	if err != nil {
		return err
	}
	sign := ""
	if tok.kind == tokenOp {
		if tok.text != "+" && tok.text != "-" {
			return &TokenError{Col: tok.pos, Token: tok.text, Want: "operand"}
		}
		sign = tok.text
		// No space between a sign and its operand is required, but a second
		// sign is not an operand.
		tok, err = scan.next("")
		if err != nil {
			return err
		}
	}
	switch tok.kind {
	case tokenNum:
		p.events = append(p.events, PushNumber(sign+tok.text))
	case tokenDice:
		k := strings.IndexByte(tok.text, 'd')
		q, s := tok.text[:k], tok.text[k+1:]
		if err := p.checkQuantity(tok, q); err != nil {
			return err
		}
		p.events = append(p.events, PushDice(sign, q, s))
	case tokenOp:
		return &TokenError{Col: tok.pos, Token: tok.text, Want: "operand"}
	case tokenEOF:
		return &EmptyExpressionError{Col: tok.pos}
	default:
		panic("dice: unknown token: " + tok.String())
	}
	return nil
}

// checkQuantity checks a dice quantity against the configured limit.
func (p *parsectx) checkQuantity(tok lexToken, q string) error {
	if p.maxq <= 0 || q == "" {
		return nil
	}
	n, err := strconv.Atoi(q)
	if err != nil || n > p.maxq {
		// Quantities too large for int are certainly over the limit.
		return &LimitError{Col: tok.pos, Text: tok.text, Max: p.maxq}
	}
	return nil
}
