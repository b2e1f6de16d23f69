// Package notecalc evaluates arithmetic written in notes.
//
// The syntax is what you'd jot down next to a shopping list: "2+3*4",
// "2(3+4)", "sin 30 + 10", "2 pi". Adjacent terms multiply, so "2 3" is 6.
// Functions take one argument, either parenthesized or a bare term that
// absorbs products but not sums: "sin 2*3 + 1" is "sin(2*3) + 1". "-2^2" is
// "-(2^2)", and "2^3^2" is "2^(3^2)". "**" is another spelling of "^".
//
// Every expression evaluates to a float64. Division by zero is not an error;
// it gives an infinity or NaN as IEEE-754 arithmetic does. Errors from bad
// input unwrap to one of two Kinds, Unrecognized and Invalid, whose String
// methods give the messages a host shows in place of a result.
package notecalc
