package ring

// KRed reduces a modulo Q by computing 3*a0 - a1 for a = a1*2^12 + a0.
// Since q = 3*2^12 + 1, the result is congruent to 3*a mod Q. The input
// must satisfy |a| < 2^55; for |a| < 2^24 the result lies in (-Q, 3*Q).
func KRed(a int64) int32 {
	c0 := int32(a & 0xFFF)
	c1 := int32(a >> 12)
	return 3*c0 - c1
}

// KRed2x applies two merged K-RED stages, computing 9*a0 - 3*a1 + a2 for
// a = a2*2^24 + a1*2^12 + a0. The result is congruent to 9*a mod Q; for
// |a| < 2^36 it lies within (-2^16, 2^16).
func KRed2x(a int64) int32 {
	c0 := int32(a & 0xFFF)
	c1 := int32((a >> 12) & 0xFFF)
	c2 := int32(a >> 24)
	return 9*c0 - 3*c1 + c2
}

// bredMul is round(2^26 / Q), the multiplier of the signed Barrett step.
const bredMul = 5461

// BRed subtracts the nearest multiple of Q from x, computing x mod Q
// exactly (no scale factor). The input must satisfy |x| < 2^24; the
// result lies in (-Q, Q), and within about (-Q/2, Q/2) away from the
// input bound.
func BRed(x int32) int32 {
	t := (int64(x)*bredMul + (1 << 25)) >> 26
	return x - int32(t)*Q
}

// TwoReduce narrows every coefficient of p1 to (-Q, Q) with two Barrett
// stages and writes the result on p2. Exact modulo Q.
func TwoReduce(p1, p2 *Poly) {
	for i := range p1.Coeffs {
		p2.Coeffs[i] = BRed(BRed(p1.Coeffs[i]))
	}
}

// Correction adds Q to every negative coefficient of p1 and writes the
// result on p2, yielding the canonical range [0, Q) for inputs in (-Q, Q).
// The conditional is an arithmetic mask, not a branch.
func Correction(p1, p2 *Poly) {
	for i := range p1.Coeffs {
		x := p1.Coeffs[i]
		p2.Coeffs[i] = x + (Q & (x >> 31))
	}
}
