// Package rsademo is the host-facing surface of a from-scratch RSA demo.
//
// The functions here translate between plain strings and byte slices and the
// typed core in the subpackages:
//
//   - decimal: canonical base-10 text for *big.Int values
//   - seed: 32-byte seeds and the deterministic generator
//   - numtheory: gcd, lcm, Bézout coefficients, modular inverse
//   - primality: trial division, Fermat and Miller-Rabin tests
//   - prime: probable-prime sampling of an exact bit length
//   - keypair: key-pair derivation from two seeds
//   - cipher: byte-wise textbook RSA
//
// A typical exchange:
//
//	kp, err := rsademo.GenerateKeypair(seedA, seedB)
//	ct, err := rsademo.Encrypt([]byte("HelloWorld!"), kp.E().String(), kp.N().String())
//	pt, err := rsademo.Decrypt(ct, kp)
//
// # Security Considerations
//
// Everything is deterministic in the seeds, arithmetic is not constant time,
// and there is no padding. This package exists for teaching and
// reproducible demos, not for protecting data.
package rsademo
