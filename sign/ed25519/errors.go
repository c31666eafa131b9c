package ed25519

import "errors"

var (
	// ErrInvalidPublicKey is returned when the public key bytes do not
	// decode to a curve point.
	ErrInvalidPublicKey = errors.New("ed25519: invalid public key")

	// ErrWeakPublicKey is returned when the public key is all zero or
	// encodes the identity element.
	ErrWeakPublicKey = errors.New("ed25519: weak public key")

	// ErrNonCanonicalSignature is returned when the S half of a signature
	// is not strictly below the group order.
	ErrNonCanonicalSignature = errors.New("ed25519: non-canonical signature")

	// ErrSignatureMismatch is returned when the recomputed point does not
	// match the R half of the signature.
	ErrSignatureMismatch = errors.New("ed25519: signature mismatch")

	// ErrZeroSeed is returned when a key pair is derived from the all-zero
	// seed.
	ErrZeroSeed = errors.New("ed25519: all-zero seed")

	// ErrSelfVerification is returned by Sign when SignOptions.SelfVerify
	// is set and the freshly produced signature fails to verify, which
	// indicates a corrupted computation rather than bad input.
	ErrSelfVerification = errors.New("ed25519: self-verification of new signature failed")
)
