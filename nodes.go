package notecalc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Children are
// owned by their parent; no node is shared.
type node struct {
	kind nodeKind

	// num is the value of a nodeNum.
	num float64
	// name is the source text of a nodeNum or the function name of a
	// nodeCall.
	name string
	// fn is the function of a nodeCall.
	fn Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeCall // evaluate left, apply fn

	nodePos // evaluate left
	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

//go:generate stringer -type=nodeKind -trimprefix=node

// binop is a binary operator symbol. Its values index binops, so every
// operator the lexer can produce has a binding power by construction.
type binop uint8

const (
	opAdd binop = iota
	opSub
	opMul
	opDiv
	opPow
)

// binops gives the binding powers and node kind of each binary operator.
// Higher powers bind tighter. A right power below the left power makes the
// operator right-associative.
var binops = [...]struct {
	left, right uint8
	kind        nodeKind
}{
	opAdd: {1, 2, nodeAdd},
	opSub: {1, 2, nodeSub},
	opMul: {5, 6, nodeMul},
	opDiv: {5, 6, nodeDiv},
	opPow: {8, 7, nodePow},
}

const (
	// argpower is the minimum binding power of a bare function argument and
	// of the right side of an implicit multiplication: tighter than + and -,
	// looser than * and /.
	argpower uint8 = 4
	// unarypower is the binding power of prefix + and -: tighter than * and /,
	// looser than ^.
	unarypower uint8 = 7
)

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		if n.name != "" {
			b.WriteString(n.name)
		} else {
			b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
		}
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodePos:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.fmtbin(b, " + ", square)
	case nodeSub:
		n.fmtbin(b, " - ", square)
	case nodeMul:
		n.fmtbin(b, " * ", square)
	case nodeDiv:
		n.fmtbin(b, " / ", square)
	case nodePow:
		n.fmtbin(b, " ^ ", square)
	default:
		panic("notecalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtbin(b *strings.Builder, op string, square bool) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
