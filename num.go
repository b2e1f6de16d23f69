package notecalc

// readNum reads a numeric literal: decimal digits, optionally followed by a
// dot and more decimal digits. Either side of the dot may be empty, so "."
// reads as 0. There are no signs or exponents. The second result is false if
// the text contains anything else, including a second dot.
//
// Fraction digits are added one at a time, each weighted by a multiplier
// that starts at 0.1 and is divided by 10 per digit, so "0.3" reads as
// 3*0.1 = 0.30000000000000004 rather than the nearest float64 to 0.3.
func readNum(text string) (float64, bool) {
	var v float64
	i := 0
	for ; i < len(text); i++ {
		c := text[i]
		if c == '.' {
			break
		}
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + float64(c-'0')
	}
	if i == len(text) {
		return v, true
	}
	var f float64
	m := 0.1
	for _, c := range []byte(text[i+1:]) {
		if c < '0' || c > '9' {
			return 0, false
		}
		f += float64(c-'0') * m
		m /= 10
	}
	return v + f, true
}
