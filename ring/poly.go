package ring

import "runtime"

// Poly is the structure that contains the coefficients of a polynomial.
// Coefficients are signed; the canonical unsigned range [0, Q) is only
// established by Correction, immediately before a polynomial is packed
// for the wire.
type Poly struct {
	Coeffs [N]int32
}

// Copy copies the coefficients of p1 on the target polynomial.
func (pol *Poly) Copy(p1 *Poly) {
	pol.Coeffs = p1.Coeffs
}

// Equal reports whether the target polynomial and p1 have identical
// coefficients.
func (pol *Poly) Equal(p1 *Poly) bool {
	return pol.Coeffs == p1.Coeffs
}

// Zero sets all coefficients of the target polynomial to 0. The store is
// ordered after all previous uses of the polynomial and is not elided, so
// it doubles as the wipe for secret-carrying polynomials.
func (pol *Poly) Zero() {
	for i := range pol.Coeffs {
		pol.Coeffs[i] = 0
	}
	runtime.KeepAlive(&pol.Coeffs)
}
