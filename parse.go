package notecalc

import (
	"io"
	"strconv"
	"strings"
)

// Expr = num | const | Call | Pos | Neg | Add | Sub | Mul | Div | Pow | Term | '(' Expr ')'
// Call = funcname Arg
// Arg = '(' Expr ')' | Expr    (binding no looser than an implicit product)
// Pos = '+' Expr
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr | Expr '**' Expr
// Term = Expr Arg    (implicit multiplication)

// Expr is a parsed expression. An Expr is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// stream is a cursor over one level of lexemes: the top level of the input
// or the inside of a group.
type stream struct {
	lx []lexeme
	i  int
	// end is the column just past the sequence, used to report a missing
	// operand.
	end int
}

func (s *stream) peek() *lexeme {
	if s.i >= len(s.lx) {
		return nil
	}
	return &s.lx[s.i]
}

func (s *stream) next() *lexeme {
	l := s.peek()
	if l != nil {
		s.i++
	}
	return l
}

// col returns the column of the next lexeme, or the end column.
func (s *stream) col() int {
	if l := s.peek(); l != nil {
		return l.pos
	}
	return s.end
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order. Parse reads src until the end of the input or the stop
// rune set by StopOn.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs == nil {
		p.funcs = globalfuncs
	} else if !p.nodefaults {
		// Only set default functions that aren't already set. Options always
		// copy the map, so this doesn't modify anything the caller owns.
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
	}
	if p.maxdepth <= 0 {
		p.maxdepth = DefaultMaxDepth
	}
	scan := lex(src, p.maxdepth)
	lx, err := scan.lex(p.stop, 0)
	if err != nil {
		return nil, err
	}
	s := &stream{lx: lx, end: scan.rune + 1}
	n, err := p.parsebp(s, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parsebp parses an operand followed by any binary operators whose left
// binding power is at least min. A parenthesized group always restarts at
// power 0.
func (p *parsectx) parsebp(s *stream, min uint8, depth int) (*node, error) {
	if depth > p.maxdepth {
		return nil, p.toodeep(s)
	}
	lhs, err := p.parseatom(s, depth)
	if err != nil {
		return nil, err
	}
	for {
		tok := s.peek()
		switch {
		case tok == nil:
			return lhs, nil
		case tok.kind == lexSym:
			op := binops[tok.op]
			if op.left < min {
				return lhs, nil
			}
			s.next()
			rhs, err := p.parsebp(s, op.right, depth+1)
			if err != nil {
				return nil, err
			}
			lhs = &node{kind: op.kind, left: lhs, right: rhs}
		default:
			// Adjacent operand: implicit multiplication. This deliberately
			// does not compare against min, so an implicit product is always
			// absorbed into the operand currently being parsed: "2^3 4" is
			// 2^(3*4), while "2^3*4" is (2^3)*4.
			rhs, err := p.parsearg(s, depth+1)
			if err != nil {
				return nil, err
			}
			lhs = &node{kind: nodeMul, left: lhs, right: rhs}
		}
	}
}

// parseatom parses exactly one operand: a number, a constant, a function and
// its argument, a group, or a unary operator and its operand.
func (p *parsectx) parseatom(s *stream, depth int) (*node, error) {
	if depth > p.maxdepth {
		return nil, p.toodeep(s)
	}
	tok := s.next()
	if tok == nil {
		return nil, &SyntaxError{Kind: Unrecognized, Col: s.end, Msg: "missing operand"}
	}
	switch tok.kind {
	case lexNum:
		v, ok := readNum(tok.text)
		if !ok {
			return nil, &SyntaxError{Kind: Invalid, Col: tok.pos, Text: tok.text, Msg: "malformed number"}
		}
		return &node{kind: nodeNum, num: v, name: tok.text}, nil
	case lexIdent:
		if fn := p.funcs[tok.text]; fn != nil {
			arg, err := p.parsearg(s, depth+1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}, nil
		}
		if v, ok := constants[tok.text]; ok {
			return &node{kind: nodeNum, num: v, name: tok.text}, nil
		}
		return nil, &SyntaxError{Kind: Unrecognized, Col: tok.pos, Text: tok.text, Msg: "unknown identifier"}
	case lexGroup:
		inner := &stream{lx: tok.inner, end: tok.end}
		return p.parsebp(inner, 0, depth+1)
	case lexSym:
		switch tok.text {
		case "+":
			rhs, err := p.parsebp(s, unarypower, depth+1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodePos, left: rhs}, nil
		case "-":
			rhs, err := p.parsebp(s, unarypower, depth+1)
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeNeg, left: rhs}, nil
		case "*", "/", "^":
			return nil, &SyntaxError{Kind: Invalid, Col: tok.pos, Text: tok.text, Msg: "operator cannot start an expression"}
		default:
			return nil, &SyntaxError{Kind: Unrecognized, Col: tok.pos, Text: tok.text, Msg: "unexpected operator"}
		}
	default:
		panic("notecalc: unknown lexeme: " + tok.String())
	}
}

// parsearg parses a function argument or the right side of an implicit
// multiplication. A group is taken whole; anything else binds tighter than +
// and - but not * and /.
func (p *parsectx) parsearg(s *stream, depth int) (*node, error) {
	if tok := s.peek(); tok != nil && tok.kind == lexGroup {
		return p.parseatom(s, depth)
	}
	return p.parsebp(s, argpower, depth)
}

func (p *parsectx) toodeep(s *stream) error {
	return &SyntaxError{Kind: Invalid, Col: s.col(), Msg: "nesting exceeds depth " + strconv.Itoa(p.maxdepth)}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
