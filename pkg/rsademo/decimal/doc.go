// Package decimal converts between *big.Int values and their canonical base-10
// text form.
//
// The canonical form is the one produced by [big.Int.String]: an optional
// leading '-' followed by digits with no leading zeros. Zero is always "0".
// [Parse] accepts only canonical input, so Format(Parse(s)) == s for every
// string Parse accepts and Parse(Format(x)) == x for every x.
package decimal
