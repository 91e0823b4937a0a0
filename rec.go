package newhope

import "github.com/lattica/newhope/ring"

// Reconciliation over the lattice D4, on groups of four coefficients
// x[i], x[i+256], x[i+512], x[i+768]. All selections are arithmetic masks
// on 32-bit words; the unsigned wraparound below is part of the function
// definition, not an accident.

const qU = uint32(ring.Q)

// Rounding thresholds: multiples of q/4 and q/2 over the doubled domain
// y = 2x - b.
const (
	thrQ4  = qU / 4
	thrQ2  = qU / 2
	thr3Q4 = 3 * qU / 4
	thr3Q2 = 3 * qU / 2
	thr5Q4 = 5 * qU / 4
	thr7Q4 = 7 * qU / 4
)

// abs32 returns |v| for v interpreted as a signed 32-bit value, without
// branching.
func abs32(v uint32) uint32 {
	mask := uint32(int32(v) >> 31)
	return (mask ^ v) - mask
}

// helpRec computes the responder's hint vector r from the canonical joint
// polynomial x. One pseudorandom bit per group of four coefficients,
// derived from (seed, nonce) through the stream oracle, biases the
// rounding lattice; the chosen closest vector in D4 or its odd coset is
// encoded as four 2-bit hints.
func helpRec(x *ring.Poly, seed []byte, nonce byte, stream Stream, r *ring.Poly) error {
	var nce [NonceBytes]byte
	nce[1] = nonce

	var bits [32]byte
	defer wipeBytes(bits[:])
	if err := stream.Expand(seed, nce, bits[:]); err != nil {
		return err
	}

	for i := 0; i < 256; i++ {
		bit := uint32(bits[i>>3]>>(i&7)) & 1

		var y [4]uint32
		for j := 0; j < 4; j++ {
			y[j] = uint32(x.Coeffs[i+256*j])<<1 - bit
		}

		// v0 counts the quarter-integer thresholds each lane reaches, v1
		// the half-integer ones: the candidate closest vectors in D4 and
		// in the coset D4 + (1/2,1/2,1/2,1/2).
		v0 := [4]uint32{4, 4, 4, 4}
		v1 := [4]uint32{3, 3, 3, 3}
		var norm uint32
		for j := 0; j < 4; j++ {
			v0[j] -= (y[j] - thrQ4) >> 31
			v0[j] -= (y[j] - thr3Q4) >> 31
			v0[j] -= (y[j] - thr5Q4) >> 31
			v0[j] -= (y[j] - thr7Q4) >> 31
			v1[j] -= (y[j] - thrQ2) >> 31
			v1[j] -= (y[j] - qU) >> 31
			v1[j] -= (y[j] - thr3Q2) >> 31
			norm += abs32(2*y[j] - qU*v0[j])
		}

		// nmask is all-ones when v0 is the closer candidate.
		nmask := uint32(int32(norm-qU) >> 31)
		for j := 0; j < 4; j++ {
			v0[j] = (nmask & (v0[j] ^ v1[j])) ^ v1[j]
		}

		r.Coeffs[i] = int32((v0[0] - v0[3]) & 3)
		r.Coeffs[i+256] = int32((v0[1] - v0[3]) & 3)
		r.Coeffs[i+512] = int32((v0[2] - v0[3]) & 3)
		r.Coeffs[i+768] = int32((v0[3]<<1 + (1 & ^nmask)) & 3)
	}

	return nil
}

// ldDecode decides one key bit: 1 when the group's l1 distance to the
// nearest point of the scaled lattice 8q*D4 stays below 8q.
func ldDecode(t0, t1, t2, t3 uint32) byte {
	const cneg = ^(8 * qU) + 1 // -8q as an unsigned word

	var norm uint32
	for _, t := range [4]uint32{t0, t1, t2, t3} {
		mask1 := uint32(int32(t) >> 31)
		mask2 := uint32(int32(4*qU-abs32(t)) >> 31)
		value := (mask1 & (8*qU ^ cneg)) ^ cneg
		norm += abs32(t + (mask2 & value))
	}

	return byte(((8*qU - norm) >> 31) ^ 1)
}

// rec derives the 32-byte shared key from the canonical joint polynomial x
// and the hint vector rvec, one bit per group, least significant bit
// first within each key byte.
func rec(x, rvec *ring.Poly, key []byte) {
	for i := range key {
		key[i] = 0
	}
	for i := 0; i < 256; i++ {
		r0 := uint32(rvec.Coeffs[i])
		r1 := uint32(rvec.Coeffs[i+256])
		r2 := uint32(rvec.Coeffs[i+512])
		r3 := uint32(rvec.Coeffs[i+768])
		t0 := 8*uint32(x.Coeffs[i]) - (2*r0+r3)*qU
		t1 := 8*uint32(x.Coeffs[i+256]) - (2*r1+r3)*qU
		t2 := 8*uint32(x.Coeffs[i+512]) - (2*r2+r3)*qU
		t3 := 8*uint32(x.Coeffs[i+768]) - r3*qU
		key[i>>3] |= ldDecode(t0, t1, t2, t3) << (i & 7)
	}
}
