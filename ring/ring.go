// Package ring implements the polynomial ring Z_q[x]/(x^N+1) for the fixed
// parameters N = 1024 and q = 12289, the arithmetic core of the key exchange:
// number-theoretic transforms, K-RED modular reduction, coefficient-wise
// operations and the binomial noise sampler.
//
// The modulus has the special form q = 3*2^12 + 1, so Montgomery-style
// reduction with radix 2^12 collapses to the two-term K-RED of Longa and
// Naehrig, which multiplies its input by 3 modulo q while narrowing it. The
// twiddle tables fold the inverse factor 3^-1 into every entry, which makes
// each butterfly exact; the residual powers of three introduced by the
// pointwise operations are cancelled by the transform's boundary passes, so
// Correction(InvNTT(NTT(p))) is the identity on canonical inputs.
//
// All operations on secret data are branchless and index memory only at
// public positions.
package ring

const (
	// N is the number of coefficients of a polynomial, i.e. the degree of
	// the cyclotomic x^N+1.
	N = 1024

	// Q is the coefficient modulus.
	Q = 12289
)
