package ring

// mulScale is 3^-5 mod Q. The pointwise products below reduce through one
// KRed2x (factor 9) and one KRed (factor 3); multiplying by mulScale in
// between leaves the net factor 3^-2, which the transform boundaries and
// the 3/81 error pre-scales are calibrated against.
const mulScale = 11935

// MulCoeffs multiplies p1 by p2 coefficient-wise in the NTT domain and
// writes the result on p3. The result carries the factor 3^-2 and lies in
// (-Q, Q). p1 must hold values in [0, 2^14), p2 in (-2^15, 2^15).
func MulCoeffs(p1, p2, p3 *Poly) {
	for i := range p3.Coeffs {
		t := KRed2x(int64(p1.Coeffs[i]) * int64(p2.Coeffs[i]))
		p3.Coeffs[i] = BRed(KRed(int64(t) * mulScale))
	}
}

// MulCoeffsAndAdd multiplies p1 by p2 coefficient-wise in the NTT domain,
// adds p3 and writes the result on pOut, with the same 3^-2 factor and
// (-Q, Q) range as MulCoeffs. p3 holds a pre-scaled error polynomial with
// values in (-2^21, 2^21).
func MulCoeffsAndAdd(p1, p2, p3, pOut *Poly) {
	for i := range pOut.Coeffs {
		t := KRed2x(int64(p1.Coeffs[i])*int64(p2.Coeffs[i]) + int64(p3.Coeffs[i]))
		pOut.Coeffs[i] = BRed(KRed(int64(t) * mulScale))
	}
}

// MulScalar multiplies every coefficient of p1 by the small constant
// scalar, without reduction, and writes the result on p2. It implements
// the x3 and x81 Montgomery normalisations of the error polynomials.
func MulScalar(p1 *Poly, scalar int32, p2 *Poly) {
	for i := range p1.Coeffs {
		p2.Coeffs[i] = p1.Coeffs[i] * scalar
	}
}
