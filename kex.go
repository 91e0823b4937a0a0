package newhope

import "github.com/lattica/newhope/ring"

// SecretKey is the initiator's private share: the secret polynomial in the
// NTT domain. It stays valid between KeyGeneration and SecretAgreementA;
// callers should Wipe it as soon as the exchange completes.
type SecretKey struct {
	s ring.Poly
}

// Wipe zeroes the private share.
func (sk *SecretKey) Wipe() {
	sk.s.Zero()
}

// ntTransformer is the transform implementation the protocol runs on,
// fixed at init. Tests exercise every registered implementation through
// the same interface.
var ntTransformer ring.NumberTheoreticTransformer = ring.NumberTheoreticTransformerStandard{}

// sampleError draws one noise polynomial from the stream oracle: the nonce
// byte sits at offset 0 of the 8-byte nonce, domain-separating error
// sampling from the hint bits of helpRec.
func sampleError(stream Stream, seed []byte, nonce byte, p *ring.Poly) error {
	var nce [NonceBytes]byte
	nce[0] = nonce

	var buf [ring.StreamBytes]byte
	defer wipeBytes(buf[:])
	if err := stream.Expand(seed, nce, buf[:]); err != nil {
		return err
	}
	ring.SampleBinomial(buf[:], p)
	return nil
}

// KeyGeneration generates the initiator's key pair: the private share and
// the PublicKeyABytes wire message b ‖ seed. On failure every sensitive
// intermediate is wiped and the oracle's error is returned unchanged.
func KeyGeneration(suite *Suite) (sk *SecretKey, publicKeyA []byte, err error) {
	if err = suite.check(); err != nil {
		return nil, nil, err
	}

	var (
		a, e  ring.Poly
		seed  [SeedBytes]byte
		eseed [ErrorSeedBytes]byte
	)
	priv := new(SecretKey)
	defer func() {
		e.Zero()
		wipeBytes(eseed[:])
		if err != nil {
			priv.Wipe()
		}
	}()

	if err = suite.Random.ReadRandom(seed[:]); err != nil {
		return nil, nil, err
	}
	if err = suite.Random.ReadRandom(eseed[:]); err != nil {
		return nil, nil, err
	}
	if err = suite.XOF.Expand(seed[:], &a); err != nil {
		return nil, nil, err
	}

	if err = sampleError(suite.Stream, eseed[:], 0, &priv.s); err != nil {
		return nil, nil, err
	}
	if err = sampleError(suite.Stream, eseed[:], 1, &e); err != nil {
		return nil, nil, err
	}
	ntTransformer.Forward(&priv.s)
	ntTransformer.Forward(&e)
	ring.MulScalar(&e, 3, &e)

	// b = a*s + 3e in the NTT domain, canonical for the wire.
	ring.MulCoeffsAndAdd(&a, &priv.s, &e, &a)
	ring.Correction(&a, &a)

	publicKeyA = make([]byte, PublicKeyABytes)
	encodeA(&a, seed[:], publicKeyA)
	return priv, publicKeyA, nil
}

// SecretAgreementB is the responder's single pass: it consumes the
// initiator's message and produces the PublicKeyBBytes reply u ‖ r along
// with the responder's copy of the shared secret. On failure every
// sensitive intermediate is wiped, no partial output is returned, and the
// oracle's error propagates unchanged.
func SecretAgreementB(suite *Suite, publicKeyA []byte) (publicKeyB, sharedSecret []byte, err error) {
	if err = suite.check(); err != nil {
		return nil, nil, err
	}
	if len(publicKeyA) != PublicKeyABytes {
		return nil, nil, StatusErrorInvalidParameter
	}

	var (
		pkA, a, v, r, sB, e ring.Poly
		seed                [SeedBytes]byte
		eseed               [ErrorSeedBytes]byte
	)
	defer func() {
		sB.Zero()
		e.Zero()
		a.Zero()
		v.Zero()
		r.Zero()
		wipeBytes(eseed[:])
	}()

	decodeA(publicKeyA, &pkA, seed[:])
	if err = suite.Random.ReadRandom(eseed[:]); err != nil {
		return nil, nil, err
	}
	if err = suite.XOF.Expand(seed[:], &a); err != nil {
		return nil, nil, err
	}

	if err = sampleError(suite.Stream, eseed[:], 0, &sB); err != nil {
		return nil, nil, err
	}
	if err = sampleError(suite.Stream, eseed[:], 1, &e); err != nil {
		return nil, nil, err
	}
	ntTransformer.Forward(&sB)
	ntTransformer.Forward(&e)
	ring.MulScalar(&e, 3, &e)

	// u = a*s' + 3e', canonical for the wire.
	ring.MulCoeffsAndAdd(&a, &sB, &e, &a)
	ring.Correction(&a, &a)

	if err = sampleError(suite.Stream, eseed[:], 2, &e); err != nil {
		return nil, nil, err
	}
	ntTransformer.Forward(&e)
	ring.MulScalar(&e, 81, &e)

	// v = b*s' + 81e'', back to standard order and canonical range.
	ring.MulCoeffsAndAdd(&pkA, &sB, &e, &v)
	ntTransformer.Backward(&v)
	ring.TwoReduce(&v, &v)
	ring.Correction(&v, &v)

	if err = helpRec(&v, eseed[:], 3, suite.Stream, &r); err != nil {
		return nil, nil, err
	}
	sharedSecret = make([]byte, SharedSecretBytes)
	rec(&v, &r, sharedSecret)

	publicKeyB = make([]byte, PublicKeyBBytes)
	encodeB(&a, &r, publicKeyB)
	return publicKeyB, sharedSecret, nil
}

// SecretAgreementA is the initiator's second leg: it consumes the
// responder's message and derives the initiator's copy of the shared
// secret from the stored private share.
func SecretAgreementA(sk *SecretKey, publicKeyB []byte) (sharedSecret []byte, err error) {
	if sk == nil {
		return nil, StatusErrorInvalidParameter
	}
	if len(publicKeyB) != PublicKeyBBytes {
		return nil, StatusErrorInvalidParameter
	}

	var u, r ring.Poly
	defer func() {
		u.Zero()
		r.Zero()
	}()

	decodeB(publicKeyB, &u, &r)

	// w = s*u, back to standard order and canonical range.
	ring.MulCoeffs(&u, &sk.s, &u)
	ntTransformer.Backward(&u)
	ring.TwoReduce(&u, &u)
	ring.Correction(&u, &u)

	sharedSecret = make([]byte, SharedSecretBytes)
	rec(&u, &r, sharedSecret)
	return sharedSecret, nil
}
