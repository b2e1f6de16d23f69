package notecalc

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultMaxDepth is the nesting depth limit used when no MaxDepth option is
// given. Each bracket, unary operator, function argument, and right operand
// counts as one level.
const DefaultMaxDepth = 1000

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
	stopopt  rune
	depthopt int
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// funcs is the set of function names that trigger argument parsing.
	funcs map[string]Func
	// stop is the rune that ends the expression at the top level.
	stop rune
	// maxdepth is the nesting depth limit. Zero means DefaultMaxDepth.
	maxdepth int
	// nodefaults indicates that parse options have set all default functions.
	nodefaults bool
}

func (p *parsectx) checkdefaults() {
	if p.nodefaults {
		return
	}
	n := 0
	for k := range p.funcs {
		if _, ok := globalfuncs[k]; ok {
			n++
		}
	}
	if n == len(globalfuncs) {
		p.nodefaults = true
	}
}

// ParseFunc sets a function for parsing. To disable parsing a function, pass
// nil for fn; its name is then an unknown identifier.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	m := make(map[string]Func, len(p.funcs)+1)
	for k, v := range p.funcs {
		m[k] = v
	}
	m[o.name] = o.fn
	p.funcs = m
	p.checkdefaults()
	return p
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	// Always make a copy.
	m := make(map[string]Func, len(p.funcs)+len(o))
	for k, v := range p.funcs {
		m[k] = v
	}
	for k, v := range o {
		m[k] = v
	}
	p.funcs = m
	p.checkdefaults()
	return p
}

// DisableDefaultFuncs disables all default functions during parsing. Their
// names become unknown identifiers. The constants e, pi, and tau remain.
func DisableDefaultFuncs() ParseOption {
	m := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

// StopOn tells the lexer to treat r as the end of the expression when it
// appears outside brackets. The default is NUL. The input after r is left
// unread, so a reader can hold several expressions. Inside brackets, a
// whitespace r is only whitespace.
//
// StopOn panics if r could begin or continue a term: a letter, digit, dot,
// operator, or bracket.
func StopOn(r rune) ParseOption {
	switch {
	case unicode.IsLetter(r), unicode.IsNumber(r), r == '.', r == '(', r == ')', strings.ContainsRune(Operators, r):
		panic("notecalc: cannot stop on " + strconv.QuoteRune(r))
	}
	return stopopt(r)
}

func (o stopopt) parseOption(p parsectx) parsectx {
	p.stop = rune(o)
	return p
}

// MaxDepth limits how deeply expressions may nest. Expressions that nest
// deeper fail with Invalid. Values below 1 select DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs != nil {
		// If we've set any functions, add unset default ones now.
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
		p.nodefaults = true
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.funcs != nil || p.stop != 0 || p.maxdepth != 0 {
		panic("notecalc: preset applied to non-default parse config")
	}
	return *o
}
