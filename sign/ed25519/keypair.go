package ed25519

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"signet/internal/memzero"
)

// KeyPairFromSeed derives a key pair from a 32-byte seed. The same seed
// always yields the same pair. The all-zero seed is refused.
func KeyPairFromSeed(seed Seed) (KeyPair, error) {
	if isZero(seed[:]) {
		return KeyPair{}, ErrZeroSeed
	}

	az := sha512.Sum512(seed[:])
	defer memzero.Zero(az[:])

	s, err := edwards25519.NewScalar().SetBytesWithClamping(az[:32])
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}
	a := new(edwards25519.Point).ScalarBaseMult(s)

	var kp KeyPair
	copy(kp.PK[:], a.Bytes())
	copy(kp.SK[:SeedSize], seed[:])
	copy(kp.SK[SeedSize:], kp.PK[:])
	return kp, nil
}

// GenerateKeyPair derives a key pair from a fresh random seed read from r.
// A nil r uses crypto/rand.
func GenerateKeyPair(r io.Reader) (KeyPair, error) {
	seed, err := GenerateSeed(r)
	if err != nil {
		return KeyPair{}, err
	}
	defer memzero.Zero(seed[:])
	return KeyPairFromSeed(seed)
}

// GenerateSeed reads a fresh seed from r. A nil r uses crypto/rand.
func GenerateSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return Seed{}, fmt.Errorf("ed25519: reading seed entropy: %w", err)
	}
	return seed, nil
}

// GenerateNoise reads fresh signature noise from r. A nil r uses crypto/rand.
func GenerateNoise(r io.Reader) (Noise, error) {
	var noise Noise
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, noise[:]); err != nil {
		return Noise{}, fmt.Errorf("ed25519: reading noise entropy: %w", err)
	}
	return noise, nil
}
