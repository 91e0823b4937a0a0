package newhope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattica/newhope/ring"
	"github.com/lattica/newhope/utils/sampling"
)

func randCanonical(t *testing.T, prng sampling.PRNG, p *ring.Poly) {
	t.Helper()
	buf := make([]byte, 2)
	for i := 0; i < ring.N; {
		_, err := prng.Read(buf)
		require.NoError(t, err)
		v := (int32(buf[0]) | int32(buf[1])<<8) & 0x3FFF
		if v < ring.Q {
			p.Coeffs[i] = v
			i++
		}
	}
}

func TestHelpRecDeterminism(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("helprec"))
	require.NoError(t, err)
	stream := NewSuite().Stream

	var v, r1, r2 ring.Poly
	randCanonical(t, prng, &v)
	seed := make([]byte, ErrorSeedBytes)
	prng.Read(seed)

	require.NoError(t, helpRec(&v, seed, 3, stream, &r1))
	require.NoError(t, helpRec(&v, seed, 3, stream, &r2))
	require.True(t, r1.Equal(&r2))

	for _, x := range r1.Coeffs {
		require.GreaterOrEqual(t, x, int32(0))
		require.LessOrEqual(t, x, int32(3))
	}
}

// TestRecAgreement feeds Rec two views of the joint polynomial that differ
// by a per-coefficient offset of at most 200 in magnitude; the hint must
// still reconcile them to the same key.
func TestRecAgreement(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG([]byte("rec-agreement"))
	require.NoError(t, err)
	stream := NewSuite().Stream

	for trial := 0; trial < 10; trial++ {
		var v, v2, r ring.Poly
		randCanonical(t, prng, &v)

		noise := make([]byte, ring.N)
		prng.Read(noise)
		for i := range v.Coeffs {
			d := int32(noise[i])%401 - 200
			v2.Coeffs[i] = ((v.Coeffs[i]+d)%ring.Q + ring.Q) % ring.Q
		}

		seed := make([]byte, ErrorSeedBytes)
		prng.Read(seed)
		require.NoError(t, helpRec(&v, seed, 3, stream, &r))

		k1 := make([]byte, SharedSecretBytes)
		k2 := make([]byte, SharedSecretBytes)
		rec(&v, &r, k1)
		rec(&v2, &r, k2)
		require.Equal(t, k1, k2, "trial %d", trial)
	}
}
