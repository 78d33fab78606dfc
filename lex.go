package dice

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a string of decimal digits.
	tokenNum
	// tokenDice is a dice literal, e.g. 3d6 or d20.
	tokenDice
	// tokenOp is an operator.
	tokenOp
)

var tokennames = [...]string{
	tokenNone: "None",
	tokenEOF:  "EOF",
	tokenNum:  "Num",
	tokenDice: "Dice",
	tokenOp:   "Op",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokennames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokennames[k]
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// DiceMarkers contains the runes which separate the quantity from the sides
// in a dice literal.
const DiceMarkers = "dD"

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("dice: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Whitespace runes in wseof end the
// input as if by EOF. The first time EOF is encountered, the result is an EOF
// token with a nil error. Subsequent times, if the EOF token is not pushed,
// the result is an empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r), r == ',', r == ';':
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			if !unicode.IsSpace(r) {
				// Separators are only meaningful as terminators.
				l.buf.WriteRune(r)
				return tok, l.error("")
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', strings.ContainsRune(DiceMarkers, r):
			l.unreadRune()
			kind, err := l.scanLiteral()
			if err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = kind
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = operstrs[k]
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanLiteral scans a number or dice literal. A dice marker may appear once,
// and it must be followed by at least one digit. The marker is normalized to
// lowercase.
func (l *lexer) scanLiteral() (tokenKind, error) {
	var dig, d, sd bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tokenNone, err
		}
		if unicode.IsSpace(r) || strings.ContainsRune(Operators+",;", r) {
			l.unreadRune()
			break
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
			if d {
				sd = true
			} else {
				dig = true
			}
		case strings.ContainsRune(DiceMarkers, r):
			l.buf.WriteByte('d')
			if d {
				return tokenNone, l.error("dice")
			}
			d = true
		default:
			l.buf.WriteRune(r)
			if d {
				return tokenNone, l.error("dice")
			}
			return tokenNone, l.error("number")
		}
	}
	switch {
	case d && sd:
		return tokenDice, nil
	case d:
		return tokenNone, l.error("dice")
	case dig:
		return tokenNum, nil
	default:
		panic("dice: scanned empty literal")
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "dice", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
