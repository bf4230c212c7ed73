// Package primality decides whether an integer is a probable prime.
//
// [IsPrime] runs a cheap-to-expensive pipeline: a lookup in the table of the
// 168 primes below 1000, trial division by the same table, a Fermat test with
// the fixed bases {2, 3, 5, 7, 11}, and finally [MillerRabin]. Composites are
// always rejected by one stage; a true result means "probable prime" with a
// false-positive rate bounded by roughly 4^-Rounds.
//
// Miller-Rabin witnesses are drawn from a generator keyed by the caller's
// seed, so verdicts are reproducible. The package holds no mutable state.
package primality
