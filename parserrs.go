package notecalc

import "strconv"

// Kind classifies failures to parse an expression. A Kind is itself an error,
// and every *SyntaxError unwraps to its Kind, so callers can test for a class
// of failure with errors.Is(err, notecalc.Invalid).
type Kind int8

const (
	// Unrecognized is an unknown character, an unknown identifier, an
	// operator or the end of input where an operand belongs, or an unmatched
	// bracket.
	Unrecognized Kind = iota + 1
	// Invalid is a malformed numeric literal, a binary-only operator at the
	// start of an expression, or nesting beyond the depth limit.
	Invalid
)

// String returns the message a host displays in place of a result.
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "<unrecognized operator>"
	case Invalid:
		return "<invalid expression>"
	default:
		return "<error " + strconv.Itoa(int(k)) + ">"
	}
}

func (k Kind) Error() string {
	return k.String()
}

// SyntaxError is an error describing input that cannot be evaluated. It
// implements InputError.
type SyntaxError struct {
	// Kind is the class of the error.
	Kind Kind
	// Col is the column of the rune that starts the offending token, counting
	// runes from 1.
	Col int
	// Text is the offending token, or the empty string at the end of input.
	Text string
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	s := err.Kind.String() + " " + err.Msg
	if err.Text != "" {
		s += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, s)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Unwrap() error {
	return err.Kind
}

// CallError is an error returned by a function during evaluation. Functions
// supplied with ParseFunc are the only ones that can fail.
type CallError struct {
	// Func is the name the function was called by.
	Func string
	// Arg is the argument the function was called with.
	Arg float64
	// Err is the function's error.
	Err error
}

func (err *CallError) Error() string {
	return err.Func + "(" + strconv.FormatFloat(err.Arg, 'g', -1, 64) + "): " + err.Err.Error()
}

func (err *CallError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
