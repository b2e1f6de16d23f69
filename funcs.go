package notecalc

import (
	"math"
	"slices"
)

// Func is a function of one real variable. A name bound to a Func takes one
// argument: either a parenthesized group, as in "sin(x+1)", or a bare term
// that absorbs multiplications but not additions, so "sin 2*3 + 1" is
// "sin(2*3) + 1".
//
// A Func may fail; its error is returned from evaluation wrapped in a
// *CallError.
type Func func(x float64) (float64, error)

// Monadic wraps a function of one variable that cannot fail into a Func.
func Monadic(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// globalfuncs is the default function table. None of these functions fail;
// out-of-domain arguments give NaN.
var globalfuncs = map[string]Func{
	"sin": Monadic(math.Sin),
	"cos": Monadic(math.Cos),
	"tan": Monadic(math.Tan),
	"sec": Monadic(sec),
	"csc": Monadic(csc),
	"cot": Monadic(cot),

	"asin":   Monadic(math.Asin),
	"arcsin": Monadic(math.Asin),
	"acos":   Monadic(math.Acos),
	"arccos": Monadic(math.Acos),
	"atan":   Monadic(math.Atan),
	"arctan": Monadic(math.Atan),
	"asec":   Monadic(asec),
	"arcsec": Monadic(asec),
	"acsc":   Monadic(acsc),
	"arccsc": Monadic(acsc),
	"acot":   Monadic(acot),
	"arccot": Monadic(acot),

	"ln":    Monadic(math.Log),
	"loge":  Monadic(math.Log),
	"log":   Monadic(math.Log10),
	"log10": Monadic(math.Log10),
	"log2":  Monadic(math.Log2),
	"lb":    Monadic(math.Log2),

	"sqrt": Monadic(math.Sqrt),
	"cbrt": Monadic(math.Cbrt),
	"abs":  Monadic(math.Abs),
}

// constants are the names that evaluate to numbers.
var constants = map[string]float64{
	"e":   math.E,
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
}

func sec(x float64) float64  { return 1 / math.Cos(x) }
func csc(x float64) float64  { return 1 / math.Sin(x) }
func cot(x float64) float64  { return 1 / math.Tan(x) }
func asec(x float64) float64 { return math.Acos(1 / x) }
func acsc(x float64) float64 { return math.Asin(1 / x) }
func acot(x float64) float64 { return math.Atan(1 / x) }

// FuncNames returns the names of the default functions in sorted order.
func FuncNames() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
