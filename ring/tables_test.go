package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTables re-derives the twiddle tables and merged constants from the
// root of unity psi = 7, so a regeneration mistake cannot survive silently.
func TestTables(t *testing.T) {
	q := big.NewInt(Q)
	psi := big.NewInt(7)

	exp := func(b *big.Int, e int64) *big.Int {
		return new(big.Int).Exp(b, big.NewInt(e), q)
	}
	mustInv := func(x *big.Int) *big.Int {
		return new(big.Int).ModInverse(x, q)
	}

	// psi generates a group of order 2N: psi^N = -1.
	require.Equal(t, int64(Q-1), exp(psi, N).Int64())

	inv3 := mustInv(big.NewInt(3))
	psiInv := mustInv(psi)

	for i := 0; i < N; i++ {
		e := int64(bitReverse10(i))
		fwd := new(big.Int).Mul(exp(psi, e), inv3)
		fwd.Mod(fwd, q)
		require.Equal(t, fwd.Int64(), int64(psiRev[i]), "psiRev[%d]", i)

		bwd := new(big.Int).Mul(exp(psiInv, e), inv3)
		bwd.Mod(bwd, q)
		require.Equal(t, bwd.Int64(), int64(psiInvRev[i]), "psiInvRev[%d]", i)
	}

	nInv := mustInv(big.NewInt(N))

	want := new(big.Int).Mul(nInv, exp(inv3, 4))
	want.Mod(want, q)
	require.Equal(t, want.Int64(), int64(nInv11))

	want = new(big.Int).Mul(exp(psiInv, N/2), nInv)
	want.Mul(want, exp(inv3, 5)).Mod(want, q)
	require.Equal(t, want.Int64(), int64(omegaInv10N))

	// mulScale is 3^-5: one KRed2x and one KRed around it leave the
	// pointwise product with a net factor of 3^-2.
	require.Equal(t, exp(inv3, 5).Int64(), int64(mulScale))
}
