package notecalc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the expression. Arithmetic follows IEEE-754: division by
// zero and out-of-domain functions produce infinities and NaN rather than
// errors. The only errors come from functions supplied with ParseFunc.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the node's value in post-order.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.fn(x)
		if err != nil {
			return 0, &CallError{Func: n.name, Arg: x, Err: err}
		}
		return r, nil
	case nodePos:
		return n.left.eval()
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	default:
		panic("notecalc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// Evaluate parses and evaluates a string expression using the default
// functions.
func Evaluate(text string) (float64, error) {
	return Eval(strings.NewReader(text))
}

// FormatResult renders the outcome of an evaluation as a host inserts it
// after " = ": the shortest decimal that reads back as v, without an
// exponent, or "inf", "-inf", "NaN". If err is non-nil, the result is the
// display message of its Kind, or the error text in angle brackets for
// errors without one.
func FormatResult(v float64, err error) string {
	if err != nil {
		var k Kind
		if errors.As(err, &k) {
			return k.String()
		}
		return "<" + err.Error() + ">"
	}
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
