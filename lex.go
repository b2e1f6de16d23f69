package notecalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexeme is either a classified token or a parenthesized group of lexemes.
type lexeme struct {
	kind lexKind
	// text is the token text. Groups have no text.
	text string
	// op is the binary operator a symbol denotes. It is only meaningful for
	// lexSym.
	op binop
	// pos is the column of the first rune of the lexeme.
	pos int
	// end is the column of the closing bracket of a group.
	end int
	// inner is the contents of a group.
	inner []lexeme
}

type lexKind int8

const (
	lexNone lexKind = iota
	// lexNum is a numeric literal. The lexer accepts any run of letters,
	// digits, and dots that starts with a digit or dot; readNum validates it.
	lexNum
	// lexIdent is a function or constant name.
	lexIdent
	// lexSym is an operator symbol.
	lexSym
	// lexGroup is a parenthesized sequence of lexemes.
	lexGroup
)

func (l lexeme) String() string {
	switch l.kind {
	case lexNum:
		return "num:" + l.text + "@" + strconv.Itoa(l.pos)
	case lexIdent:
		return "id:" + l.text + "@" + strconv.Itoa(l.pos)
	case lexSym:
		return "sym:" + l.text + "@" + strconv.Itoa(l.pos)
	case lexGroup:
		var b strings.Builder
		b.WriteString("group@")
		b.WriteString(strconv.Itoa(l.pos))
		b.WriteByte('[')
		for i, x := range l.inner {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(x.String())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "none@" + strconv.Itoa(l.pos)
	}
}

// Operators contains the runes which are considered to be operators. The
// byte index of each operator is its binop value. "**" is lexed as a single
// symbol meaning "^".
const Operators = "+-*/^"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the number of runes read so far, which is also the column of
	// the last rune read.
	rune int
	// depth is the current group nesting depth.
	depth int
	// max is the maximum group nesting depth.
	max int
}

func lex(src io.RuneScanner, max int) *lexer {
	return &lexer{src: src, max: max}
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

// lex scans lexemes until it consumes term. At the top level, the end of the
// input also ends the sequence. Inside a group, the end of the input is an
// error reported at open, the column of the group's open bracket.
func (l *lexer) lex(term rune, open int) ([]lexeme, error) {
	var r []lexeme
	for {
		c, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if l.depth > 0 {
					return nil, &SyntaxError{Kind: Unrecognized, Col: open, Text: "(", Msg: "unclosed group"}
				}
				return r, nil
			}
			return nil, err
		}
		pos := l.rune
		switch {
		case unicode.IsLetter(c):
			l.unreadRune()
			l.scan(false)
			r = append(r, lexeme{kind: lexIdent, text: l.buf.String(), pos: pos})
		case unicode.IsNumber(c), c == '.':
			l.unreadRune()
			l.scan(true)
			r = append(r, lexeme{kind: lexNum, text: l.buf.String(), pos: pos})
		case c == '*':
			tok := lexeme{kind: lexSym, text: "*", op: opMul, pos: pos}
			d, err := l.readRune()
			switch {
			case err == nil && d == '*':
				tok.text, tok.op = "**", opPow
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return nil, err
			}
			r = append(r, tok)
		case c == '(':
			if l.depth >= l.max {
				return nil, &SyntaxError{Kind: Invalid, Col: pos, Text: "(", Msg: "nesting exceeds depth " + strconv.Itoa(l.max)}
			}
			l.depth++
			inner, err := l.lex(')', pos)
			l.depth--
			if err != nil {
				return nil, err
			}
			r = append(r, lexeme{kind: lexGroup, pos: pos, end: l.rune, inner: inner})
		case c == term:
			return r, nil
		case unicode.IsSpace(c):
			// Whitespace separates terms. Adjacent terms are multiplied.
		default:
			if k := strings.IndexRune(Operators, c); k >= 0 {
				r = append(r, lexeme{kind: lexSym, text: string(c), op: binop(k), pos: pos})
				continue
			}
			return nil, &SyntaxError{Kind: Unrecognized, Col: pos, Text: string(c), Msg: "unknown character"}
		}
	}
}

// scan reads a word into the lexer's buffer. Words are letters and digits;
// if num is true, dots are also accepted.
func (l *lexer) scan(num bool) {
	l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			// lex unreads the rune that decides scanning before calling scan,
			// so we have scanned at least one rune. Any non-EOF error will
			// recur on the next read.
			return
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || (num && r == '.') {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		return
	}
}
