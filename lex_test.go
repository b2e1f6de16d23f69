package notecalc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
)

func num(text string, pos int) lexeme {
	return lexeme{kind: lexNum, text: text, pos: pos}
}

func ident(text string, pos int) lexeme {
	return lexeme{kind: lexIdent, text: text, pos: pos}
}

func sym(text string, op binop, pos int) lexeme {
	return lexeme{kind: lexSym, text: text, op: op, pos: pos}
}

func group(pos, end int, inner ...lexeme) lexeme {
	return lexeme{kind: lexGroup, pos: pos, end: end, inner: inner}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexeme
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []lexeme{num("0", 1)}},
		{"digits", "9876543210", []lexeme{num("9876543210", 1)}},
		{"two", "1 0", []lexeme{num("1", 1), num("0", 3)}},
		{"dec", "1.0", []lexeme{num("1.0", 1)}},
		{"dot", ".", []lexeme{num(".", 1)}},
		{"dotnum", ".5", []lexeme{num(".5", 1)}},
		{"dots", "1.2.3", []lexeme{num("1.2.3", 1)}},
		{"numletters", "2pi", []lexeme{num("2pi", 1)}},
		{"neg", "-1", []lexeme{sym("-", opSub, 1), num("1", 2)}},
		// identifiers
		{"e", "e", []lexeme{ident("e", 1)}},
		{"log10", "log10", []lexeme{ident("log10", 1)}},
		{"unicode", "πr", []lexeme{ident("πr", 1)}},
		{"identdot", "e.5", []lexeme{ident("e", 1), num(".5", 2)}},
		{"call", "sin(x)", []lexeme{ident("sin", 1), group(4, 6, ident("x", 5))}},
		// operators
		{"ops", "+-*/^", []lexeme{sym("+", opAdd, 1), sym("-", opSub, 2), sym("*", opMul, 3), sym("/", opDiv, 4), sym("^", opPow, 5)}},
		{"starstar", "2**3", []lexeme{num("2", 1), sym("**", opPow, 2), num("3", 4)}},
		{"starstarstar", "***", []lexeme{sym("**", opPow, 1), sym("*", opMul, 3)}},
		{"stars", "* *", []lexeme{sym("*", opMul, 1), sym("*", opMul, 3)}},
		{"trailingstar", "2*", []lexeme{num("2", 1), sym("*", opMul, 2)}},
		// groups
		{"emptygroup", "()", []lexeme{group(1, 2)}},
		{"nested", "((1))", []lexeme{group(1, 5, group(2, 4, num("1", 3)))}},
		{"adjacent", "2(3+4)", []lexeme{num("2", 1), group(2, 6, num("3", 3), sym("+", opAdd, 4), num("4", 5))}},
		// terminator
		{"nul", "1+2\x003", []lexeme{num("1", 1), sym("+", opAdd, 2), num("2", 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lex(strings.NewReader(c.src), DefaultMaxDepth).lex(0, 0)
			if err != nil {
				t.Fatalf("lexing %q: %v", c.src, err)
			}
			if !reflect.DeepEqual(got, c.tokens) {
				t.Errorf("lexing %q:\n\twant %s\n\tgot  %s", c.src, repr.String(c.tokens), repr.String(got))
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind Kind
		col  int
	}{
		{"dollar", "$", Unrecognized, 1},
		{"after", "2+$", Unrecognized, 3},
		{"close", "1)", Unrecognized, 2},
		{"comma", "1,2", Unrecognized, 2},
		{"underscore", "a_b", Unrecognized, 2},
		{"unclosed", "(1", Unrecognized, 1},
		{"unclosed-inner", "(1+(2)", Unrecognized, 1},
		{"unclosed-deep", "1+((2)", Unrecognized, 3},
		{"inner-bad", "(1#)", Unrecognized, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := lex(strings.NewReader(c.src), DefaultMaxDepth).lex(0, 0)
			if err == nil {
				t.Fatalf("lexing %q gave no error, got %s", c.src, repr.String(got))
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("lexing %q: want %v, got %v", c.src, c.kind, err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("lexing %q: %#v is not a *SyntaxError", c.src, err)
			}
			if se.Pos() != c.col {
				t.Errorf("lexing %q: want error at column %d, got %d", c.src, c.col, se.Pos())
			}
		})
	}
}

func TestLexDepth(t *testing.T) {
	src := strings.Repeat("(", 3) + "1" + strings.Repeat(")", 3)
	if _, err := lex(strings.NewReader(src), 3).lex(0, 0); err != nil {
		t.Errorf("lexing %q at depth 3: %v", src, err)
	}
	_, err := lex(strings.NewReader(src), 2).lex(0, 0)
	if !errors.Is(err, Invalid) {
		t.Errorf("lexing %q at depth 2: want Invalid, got %v", src, err)
	}
}

func TestLexStopLeavesRest(t *testing.T) {
	r := strings.NewReader("1+2\n3 4")
	got, err := lex(r, DefaultMaxDepth).lex('\n', 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []lexeme{num("1", 1), sym("+", opAdd, 2), num("2", 3)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %s, got %s", repr.String(want), repr.String(got))
	}
	if r.Len() != 3 {
		t.Errorf("lexer consumed past the stop rune: %d bytes left", r.Len())
	}
}

func TestLexStopInsideGroup(t *testing.T) {
	got, err := lex(strings.NewReader("(1\n+2)\n3"), DefaultMaxDepth).lex('\n', 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []lexeme{group(1, 6, num("1", 2), sym("+", opAdd, 4), num("2", 5))}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %s, got %s", repr.String(want), repr.String(got))
	}
}
