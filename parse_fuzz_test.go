package notecalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/notecalc"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sin 30+10")
	f.Add("2(3+4)")
	f.Add("((1)")
	f.Add("2**3**-1")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := notecalc.ParseString(s)
		if err != nil {
			if !errors.Is(err, notecalc.Unrecognized) && !errors.Is(err, notecalc.Invalid) {
				t.Errorf("%q: error %v has no kind", s, err)
			}
			return
		}
		if a.String() == "" {
			t.Errorf("%q: empty string form", s)
		}
		if _, err := a.Eval(); err != nil {
			t.Errorf("%q: default functions failed: %v", s, err)
		}
	})
}
