package x25519

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/curve25519"

	"signet/internal/memzero"
	"signet/sign/ed25519"
)

const (
	// PublicKeySize is the number of bytes in a public key.
	PublicKeySize = curve25519.PointSize
	// SecretKeySize is the number of bytes in a secret key.
	SecretKeySize = curve25519.ScalarSize
	// SharedSecretSize is the number of bytes in a shared secret.
	SharedSecretSize = 32
)

// PublicKey is a Montgomery u-coordinate.
type PublicKey [PublicKeySize]byte

// Slice returns the public key as a []byte.
func (pk PublicKey) Slice() []byte { return pk[:] }

// SecretKey is a clamped X25519 scalar.
type SecretKey [SecretKeySize]byte

// Slice returns the secret key as a []byte.
func (sk SecretKey) Slice() []byte { return sk[:] }

// KeyPair holds a public key and the secret key it belongs to.
type KeyPair struct {
	PK PublicKey
	SK SecretKey
}

// GenerateKeyPair returns a fresh key pair with entropy read from r. A nil
// r uses crypto/rand. The secret scalar is clamped per RFC 7748.
func GenerateKeyPair(r io.Reader) (KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	var sk SecretKey
	if _, err := io.ReadFull(r, sk[:]); err != nil {
		return KeyPair{}, fmt.Errorf("x25519: reading key entropy: %w", err)
	}
	clamp(&sk)

	pk, err := sk.Public()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PK: pk, SK: sk}, nil
}

// Public returns the public counterpart of the secret key.
func (sk SecretKey) Public() (PublicKey, error) {
	var pk PublicKey
	pb, err := curve25519.X25519(sk[:], curve25519.Basepoint)
	if err != nil {
		return pk, fmt.Errorf("x25519: deriving public key: %w", err)
	}
	copy(pk[:], pb)
	return pk, nil
}

// SharedSecret computes the Diffie-Hellman value for the local secret key
// and a peer public key. Low-order peer keys are rejected.
func (sk SecretKey) SharedSecret(peer PublicKey) ([SharedSecretSize]byte, error) {
	var out [SharedSecretSize]byte
	secret, err := curve25519.X25519(sk[:], peer[:])
	if err != nil {
		return out, fmt.Errorf("x25519: %w", err)
	}
	copy(out[:], secret)
	memzero.Zero(secret)
	return out, nil
}

// PublicKeyFromEd25519 maps an Ed25519 public key to its Montgomery form.
// Keys that do not decode to a curve point are rejected.
func PublicKeyFromEd25519(edPK ed25519.PublicKey) (PublicKey, error) {
	var pk PublicKey
	p, err := new(edwards25519.Point).SetBytes(edPK.Slice())
	if err != nil {
		return pk, fmt.Errorf("x25519: converting public key: %w", err)
	}
	copy(pk[:], p.BytesMontgomery())
	return pk, nil
}

// SecretKeyFromEd25519Seed expands an Ed25519 seed into the matching X25519
// secret key: the clamped lower half of the seed's SHA-512 digest, the same
// scalar the signature scheme derives.
func SecretKeyFromEd25519Seed(seed ed25519.Seed) SecretKey {
	az := sha512.Sum512(seed.Slice())
	defer memzero.Zero(az[:])

	var sk SecretKey
	copy(sk[:], az[:32])
	clamp(&sk)
	return sk
}

// clamp applies the RFC 7748 scalar clamping in place.
func clamp(sk *SecretKey) {
	sk[0] &= 248
	sk[31] &= 127
	sk[31] |= 64
}
