package ed25519

import (
	"crypto/subtle"
	"fmt"
)

const (
	// SeedSize is the number of bytes in a key-derivation seed.
	SeedSize = 32
	// NoiseSize is the number of bytes mixed into a randomized signature.
	NoiseSize = 16
	// PublicKeySize is the number of bytes in a public key.
	PublicKeySize = 32
	// SecretKeySize is the number of bytes in a secret key.
	SecretKeySize = SeedSize + PublicKeySize
	// SignatureSize is the number of bytes in a signature.
	SignatureSize = 64
)

// Seed is the 32-byte secret a key pair is derived from.
type Seed [SeedSize]byte

// Slice returns the seed as a []byte.
func (s Seed) Slice() []byte { return s[:] }

// Noise is optional per-signature randomness.
type Noise [NoiseSize]byte

// Slice returns the noise as a []byte.
func (n Noise) Slice() []byte { return n[:] }

// PublicKey is a compressed curve point used to verify signatures.
type PublicKey [PublicKeySize]byte

// Slice returns the public key as a []byte.
func (pk PublicKey) Slice() []byte { return pk[:] }

// Equal reports whether two public keys are the same, in constant time.
func (pk PublicKey) Equal(other PublicKey) bool {
	return subtle.ConstantTimeCompare(pk[:], other[:]) == 1
}

// SecretKey is a signing key: the seed followed by the matching public key.
type SecretKey [SecretKeySize]byte

// Slice returns the secret key as a []byte.
func (sk SecretKey) Slice() []byte { return sk[:] }

// Seed returns the seed the secret key was derived from.
func (sk SecretKey) Seed() Seed {
	var s Seed
	copy(s[:], sk[:SeedSize])
	return s
}

// Public returns the public counterpart of the secret key.
func (sk SecretKey) Public() PublicKey {
	var pk PublicKey
	copy(pk[:], sk[SeedSize:])
	return pk
}

// Signature is an Ed25519 signature: R followed by S.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (sig Signature) Slice() []byte { return sig[:] }

// KeyPair holds a public key and the secret key it belongs to.
type KeyPair struct {
	PK PublicKey
	SK SecretKey
}

// PublicKeyFromBytes copies b into a PublicKey, checking its length.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeySize {
		return pk, fmt.Errorf("ed25519: public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// SecretKeyFromBytes copies b into a SecretKey, checking its length.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	var sk SecretKey
	if len(b) != SecretKeySize {
		return sk, fmt.Errorf("ed25519: secret key must be %d bytes, got %d", SecretKeySize, len(b))
	}
	copy(sk[:], b)
	return sk, nil
}

// SignatureFromBytes copies b into a Signature, checking its length.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("ed25519: signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SeedFromBytes copies b into a Seed, checking its length.
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedSize {
		return s, fmt.Errorf("ed25519: seed must be %d bytes, got %d", SeedSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// NoiseFromBytes copies b into a Noise, checking its length.
func NoiseFromBytes(b []byte) (Noise, error) {
	var n Noise
	if len(b) != NoiseSize {
		return n, fmt.Errorf("ed25519: noise must be %d bytes, got %d", NoiseSize, len(b))
	}
	copy(n[:], b)
	return n, nil
}

// clamp forces a hashed seed into the valid signing-scalar range per
// RFC 8032 §5.1.5: a multiple of the cofactor with the top bit range fixed.
func clamp(az []byte) {
	az[0] &= 248
	az[31] &= 63
	az[31] |= 64
}

// isZero reports whether every byte of b is zero.
func isZero(b []byte) bool {
	var acc byte
	for _, x := range b {
		acc |= x
	}
	return acc == 0
}
