// Package keypair derives RSA key pairs from two seeds.
//
// A key pair is built from two independent 256-bit probable primes p and q,
// one per seed. The modulus is n = p*q and the private exponent is taken
// modulo the Carmichael function λ = lcm(p-1, q-1) rather than Euler's
// totient. The public exponent e is searched for, not fixed: values are drawn
// uniformly from [2, λ-2) with a generator keyed by the first seed until one
// is coprime to λ.
//
// Construction is deterministic. The same two seeds always yield the same
// key pair, which is the point for tests and demos and the reason this is not
// suitable for production keys.
//
//	kp, err := keypair.New(seedP, seedQ)
//	if err != nil {
//	    return err
//	}
//	ct := cipher.Encrypt(msg, kp.E(), kp.N())
//	pt, err := kp.Decrypt(cipher.TrimLeadingSeparator(ct))
package keypair
