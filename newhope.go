/*
Package newhope implements an ephemeral, unauthenticated post-quantum key
exchange over the ring Z_q[x]/(x^1024+1), q = 12289: Peikert's R-LWE key
exchange with the parameter choices of Alkim, Ducas, Poppelmann and Schwabe.
The package features:

  - A pure Go implementation with no assembly, cgo or floating point.
  - Constant-time ring arithmetic, noise sampling and reconciliation.
  - Pluggable randomness through a capability suite of three oracles.

Two parties derive a shared 256-bit secret over one message pair: the
initiator calls KeyGeneration and sends the 1824-byte public message, the
responder calls SecretAgreementB and answers with the 2048-byte message, and
the initiator completes with SecretAgreementA. The exchange carries no
long-term state and authenticates nobody; composing it with authentication
is the caller's concern.
*/
package newhope

const (
	// SeedBytes is the length of the public seed expanded into the shared
	// uniform polynomial a.
	SeedBytes = 32

	// ErrorSeedBytes is the length of the secret seed keying the noise
	// stream.
	ErrorSeedBytes = 32

	// NonceBytes is the length of the stream-oracle nonce.
	NonceBytes = 8

	// PolyBytes is the wire size of one packed polynomial: 1024
	// coefficients of 14 bits each.
	PolyBytes = 1792

	// RecBytes is the wire size of the packed reconciliation hint: 2 bits
	// per coefficient.
	RecBytes = 256

	// PublicKeyABytes is the size of the initiator's message: a packed
	// polynomial followed by the seed.
	PublicKeyABytes = PolyBytes + SeedBytes

	// PublicKeyBBytes is the size of the responder's message: a packed
	// polynomial followed by the packed hint.
	PublicKeyBBytes = PolyBytes + RecBytes

	// SharedSecretBytes is the size of the derived shared secret.
	SharedSecretBytes = 32
)
