package newhope

import "github.com/lattica/newhope/ring"

// Wire packing. Four 14-bit coefficients pack into seven bytes,
// little-endian within each coefficient:
//
//	b0 = c0[0:8]
//	b1 = c0[8:14] | c1[0:2]<<6
//	b2 = c1[2:10]
//	b3 = c1[10:14] | c2[0:4]<<4
//	b4 = c2[4:12]
//	b5 = c2[12:14] | c3[0:6]<<2
//	b6 = c3[6:14]
//
// Decoders accept any 14-bit pattern; values >= Q are deliberately not
// rejected here.

func encodePoly(pk *ring.Poly, m []byte) {
	i := 0
	for j := 0; j < ring.N; j += 4 {
		c0 := uint32(pk.Coeffs[j])
		c1 := uint32(pk.Coeffs[j+1])
		c2 := uint32(pk.Coeffs[j+2])
		c3 := uint32(pk.Coeffs[j+3])
		m[i] = byte(c0)
		m[i+1] = byte(c0>>8) | byte(c1&0x03)<<6
		m[i+2] = byte(c1 >> 2)
		m[i+3] = byte(c1>>10) | byte(c2&0x0F)<<4
		m[i+4] = byte(c2 >> 4)
		m[i+5] = byte(c2>>12) | byte(c3&0x3F)<<2
		m[i+6] = byte(c3 >> 6)
		i += 7
	}
}

func decodePoly(m []byte, pk *ring.Poly) {
	i := 0
	for j := 0; j < ring.N; j += 4 {
		pk.Coeffs[j] = int32(m[i]) | int32(m[i+1]&0x3F)<<8
		pk.Coeffs[j+1] = int32(m[i+1])>>6 | int32(m[i+2])<<2 | int32(m[i+3]&0x0F)<<10
		pk.Coeffs[j+2] = int32(m[i+3])>>4 | int32(m[i+4])<<4 | int32(m[i+5]&0x03)<<12
		pk.Coeffs[j+3] = int32(m[i+5])>>2 | int32(m[i+6])<<6
		i += 7
	}
}

// encodeA packs the initiator's message: the public polynomial followed by
// the seed, verbatim.
func encodeA(pk *ring.Poly, seed []byte, m []byte) {
	encodePoly(pk, m)
	copy(m[PolyBytes:PublicKeyABytes], seed)
}

// decodeA unpacks the initiator's message into pk and seed.
func decodeA(m []byte, pk *ring.Poly, seed []byte) {
	decodePoly(m, pk)
	copy(seed, m[PolyBytes:PublicKeyABytes])
}

// encodeB packs the responder's message: the public polynomial followed by
// the hint vector, four 2-bit entries per byte, least significant first.
func encodeB(pk, rvec *ring.Poly, m []byte) {
	encodePoly(pk, m)
	for j := 0; j < ring.N/4; j++ {
		m[PolyBytes+j] = byte(rvec.Coeffs[4*j]) |
			byte(rvec.Coeffs[4*j+1])<<2 |
			byte(rvec.Coeffs[4*j+2])<<4 |
			byte(rvec.Coeffs[4*j+3])<<6
	}
}

// decodeB unpacks the responder's message into pk and rvec. Each 2-bit
// hint field is independent; no validation is applied.
func decodeB(m []byte, pk, rvec *ring.Poly) {
	decodePoly(m, pk)
	for j := 0; j < ring.N/4; j++ {
		b := m[PolyBytes+j]
		rvec.Coeffs[4*j] = int32(b & 0x03)
		rvec.Coeffs[4*j+1] = int32(b>>2) & 0x03
		rvec.Coeffs[4*j+2] = int32(b>>4) & 0x03
		rvec.Coeffs[4*j+3] = int32(b >> 6)
	}
}
