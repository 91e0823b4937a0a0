package ring

import "encoding/binary"

// StreamBytes is the number of stream-oracle bytes folded into one noise
// polynomial: 24 bits per coefficient.
const StreamBytes = 3 * N

// SampleBinomial fills p with small signed noise derived deterministically
// from stream, which must hold at least StreamBytes bytes. Each coefficient
// is popcount(a) - popcount(b) for two disjoint 12-bit windows of the
// stream, i.e. a centered binomial sample in [-12, 12]. The fold is a SWAR
// accumulation over four byte lanes at a time; word order is fixed
// little-endian so the output is identical on every platform. No branch or
// memory index depends on the stream contents.
func SampleBinomial(stream []byte, p *Poly) {
	_ = stream[StreamBytes-1]

	for i := 0; i < N/4; i++ {
		w1 := binary.LittleEndian.Uint32(stream[4*i:])
		w2 := binary.LittleEndian.Uint32(stream[N+4*i:])
		w3 := binary.LittleEndian.Uint32(stream[2*N+4*i:])

		var acc1, acc2 uint32
		for j := 0; j < 8; j++ {
			acc1 += (w1 >> uint(j)) & 0x01010101
			acc2 += (w2 >> uint(j)) & 0x01010101
		}
		// The third word contributes its low nibbles to the first pair of
		// coefficients and its high nibbles to the second.
		for j := 0; j < 4; j++ {
			t := w3 >> uint(j)
			acc1 += t & 0x01010101
			acc2 += (t >> 4) & 0x01010101
		}

		p.Coeffs[2*i] = int32(acc1&0xFF) - int32((acc1>>8)&0xFF)
		p.Coeffs[2*i+1] = int32((acc1>>16)&0xFF) - int32(acc1>>24)
		p.Coeffs[2*i+N/2] = int32(acc2&0xFF) - int32((acc2>>8)&0xFF)
		p.Coeffs[2*i+N/2+1] = int32((acc2>>16)&0xFF) - int32(acc2>>24)
	}
}
