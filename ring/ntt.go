package ring

// NTT computes the in-place forward negacyclic NTT of p, taking standard
// order to bit-reversed order (Cooley-Tukey). Input coefficients must lie
// in (-Q, Q); output coefficients lie in (-2^14, 2^14) and carry a uniform
// factor of 3^3 that the pointwise operations and the inverse transform
// cancel. Butterflies multiply through KRed against twiddles with 3^-1
// folded in, so each layer is exact; both branches are narrowed with a
// branchless Barrett step.
func NTT(p *Poly) {
	a := &p.Coeffs

	t := N
	for m := 1; m < N; m <<= 1 {
		t >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * t
			S := int64(psiRev[m+i])
			for j := j1; j < j1+t; j++ {
				U := a[j]
				V := KRed(int64(a[j+t]) * S)
				a[j] = BRed(U + V)
				a[j+t] = BRed(U - V)
			}
		}
	}

	// Boundary pass: one KRed against the constant 9 per coefficient,
	// contributing the transform's uniform 3^3.
	for j := 0; j < N; j++ {
		a[j] = KRed(9 * int64(a[j]))
	}
}

// InvNTT computes the in-place inverse negacyclic NTT of p, taking
// bit-reversed order back to standard order (Gentleman-Sande). Input
// coefficients must lie in (-2^15, 2^15); output coefficients lie in
// (-Q, Q) and carry the factor 3^-3, so InvNTT(NTT(p)) is exactly p up to
// Correction. The last butterfly layer is merged with the final scaling
// through the constants nInv11 and omegaInv10N.
func InvNTT(p *Poly) {
	a := &p.Coeffs

	t := 1
	for m := N; m > 2; m >>= 1 {
		j1 := 0
		h := m >> 1
		for i := 0; i < h; i++ {
			S := int64(psiInvRev[h+i])
			for j := j1; j < j1+t; j++ {
				U := a[j]
				V := a[j+t]
				a[j] = BRed(U + V)
				a[j+t] = BRed(KRed(int64(U-V) * S))
			}
			j1 += 2 * t
		}
		t <<= 1
	}

	// Merged final layer: butterfly, multiplication by N^-1 and the last
	// twiddle in one pass.
	for j := 0; j < N/2; j++ {
		U := a[j]
		V := a[j+N/2]
		a[j] = BRed(KRed(int64(U+V) * nInv11))
		a[j+N/2] = BRed(KRed2x(int64(U-V) * omegaInv10N))
	}
}
