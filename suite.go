package newhope

import (
	"crypto/rand"
	"io"

	"github.com/lattica/newhope/ring"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// RandomSource fills caller-supplied buffers with cryptographically secure
// random bytes.
type RandomSource interface {
	ReadRandom(b []byte) error
}

// RandomSourceFunc adapts a function to the RandomSource interface.
type RandomSourceFunc func(b []byte) error

// ReadRandom calls f(b).
func (f RandomSourceFunc) ReadRandom(b []byte) error {
	return f(b)
}

// XOF derives a uniform polynomial with coefficients in [0, Q), in the NTT
// domain, from a public seed of SeedBytes bytes. Rejection sampling is the
// oracle's responsibility, with a bounded number of draws.
type XOF interface {
	Expand(seed []byte, p *ring.Poly) error
}

// XOFFunc adapts a function to the XOF interface.
type XOFFunc func(seed []byte, p *ring.Poly) error

// Expand calls f(seed, p).
func (f XOFFunc) Expand(seed []byte, p *ring.Poly) error {
	return f(seed, p)
}

// Stream deterministically expands a key of ErrorSeedBytes bytes and an
// 8-byte nonce into len(out) pseudorandom bytes.
type Stream interface {
	Expand(key []byte, nonce [NonceBytes]byte, out []byte) error
}

// StreamFunc adapts a function to the Stream interface.
type StreamFunc func(key []byte, nonce [NonceBytes]byte, out []byte) error

// Expand calls f(key, nonce, out).
func (f StreamFunc) Expand(key []byte, nonce [NonceBytes]byte, out []byte) error {
	return f(key, nonce, out)
}

// Suite is the capability record of the three oracles a protocol operation
// consumes. There is no process-global state: every entry point receives
// the suite explicitly.
type Suite struct {
	Random RandomSource
	XOF    XOF
	Stream Stream
}

func (s *Suite) check() error {
	if s == nil || s.Random == nil || s.XOF == nil || s.Stream == nil {
		return StatusErrorInvalidParameter
	}
	return nil
}

// maxUniformDraws bounds the rejection loop of the stock XOFs: 4096 16-bit
// draws for 1024 accepted coefficients. With acceptance rate Q/2^14 the
// bound is missed with probability far below 2^-128.
const maxUniformDraws = 4096

// NewSuite returns the standard oracle suite: crypto/rand randomness, a
// SHAKE-128 coefficient XOF and a SHAKE-256 keyed stream. The known-answer
// vectors shipped with the package bind this suite.
func NewSuite() *Suite {
	return &Suite{
		Random: RandomSourceFunc(func(b []byte) error {
			_, err := rand.Read(b)
			return err
		}),
		XOF: XOFFunc(func(seed []byte, p *ring.Poly) error {
			if len(seed) != SeedBytes {
				return StatusErrorInvalidParameter
			}
			h := sha3.NewShake128()
			h.Write(seed)
			return rejectUniform(h, p)
		}),
		Stream: StreamFunc(func(key []byte, nonce [NonceBytes]byte, out []byte) error {
			if len(key) != ErrorSeedBytes {
				return StatusErrorInvalidParameter
			}
			h := sha3.NewShake256()
			h.Write(key)
			h.Write(nonce[:])
			_, err := io.ReadFull(h, out)
			return err
		}),
	}
}

// NewBlake3Suite returns an oracle suite built on keyed BLAKE3 XOFs instead
// of SHAKE. It interoperates only with itself.
func NewBlake3Suite() *Suite {
	return &Suite{
		Random: RandomSourceFunc(func(b []byte) error {
			_, err := rand.Read(b)
			return err
		}),
		XOF: XOFFunc(func(seed []byte, p *ring.Poly) error {
			if len(seed) != SeedBytes {
				return StatusErrorInvalidParameter
			}
			h, err := blake3.NewKeyed(seed)
			if err != nil {
				return err
			}
			return rejectUniform(h.Digest(), p)
		}),
		Stream: StreamFunc(func(key []byte, nonce [NonceBytes]byte, out []byte) error {
			if len(key) != ErrorSeedBytes {
				return StatusErrorInvalidParameter
			}
			h, err := blake3.NewKeyed(key)
			if err != nil {
				return err
			}
			h.Write(nonce[:])
			_, err = io.ReadFull(h.Digest(), out)
			return err
		}),
	}
}

// rejectUniform fills p with coefficients in [0, Q) from the byte stream r:
// 2 bytes little-endian per draw, masked to 14 bits, values >= Q rejected.
func rejectUniform(r io.Reader, p *ring.Poly) error {
	var buf [2]byte
	draws := 0
	for i := 0; i < ring.N; {
		if draws == maxUniformDraws {
			return StatusErrorTooManyIterations
		}
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return err
		}
		draws++
		v := (int32(buf[0]) | int32(buf[1])<<8) & 0x3FFF
		if v < ring.Q {
			p.Coeffs[i] = v
			i++
		}
	}
	return nil
}
