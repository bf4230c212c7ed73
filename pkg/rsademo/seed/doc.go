// Package seed provides the fixed-size seed type and the deterministic
// generator that every randomized step of the library draws from.
//
// SECURITY WARNING: the generator is deterministic by construction. The same
// seed always yields the same byte stream, which is what makes prime search,
// witness selection and exponent search reproducible in tests. Callers that
// want unpredictable keys must supply unpredictable seed material.
//
// # Generator construction
//
// A [Generator] extracts a pseudorandom key from the seed with HKDF-SHA256
// (RFC 5869 Extract, fixed salt) and then produces 32-byte blocks as
// HMAC-SHA256(key, info || counter) with a 64-bit big-endian block counter.
// Unlike HKDF-Expand the stream has no 255-block ceiling, which matters for
// prime search where each candidate consumes a fresh draw.
//
// Nothing in this package touches a global entropy source.
package seed
