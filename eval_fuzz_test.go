package notecalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/notecalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1/0")
	f.Add("-2^2")
	f.Add("2^3 4")
	f.Add("sqrt -1")
	f.Fuzz(func(t *testing.T, s string) {
		a, aerr := notecalc.Evaluate(s)
		b, berr := notecalc.Evaluate(s)
		if (aerr == nil) != (berr == nil) || math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("%q: %g, %v then %g, %v", s, a, aerr, b, berr)
		}
	})
}
