// Package ed25519 implements the Ed25519 signature scheme: key derivation
// from a seed, deterministic or noise-randomized signing, and verification
// with defensive checks.
//
// # Overview
//
// Callers obtain a Seed (random or fixed), derive a KeyPair once, then sign
// messages with the secret key and verify with the public key. Signing and
// verification are stateless and safe for concurrent use.
//
//	kp, err := ed25519.GenerateKeyPair(nil)
//	sig, err := kp.SK.Sign(message, nil)
//	err = kp.PK.Verify(message, sig)
//
// Passing a Noise value to Sign randomizes the nonce while keeping the
// signature verifiable, which mitigates fault attacks against deterministic
// nonces. SignOptions.SelfVerify additionally re-verifies the signature
// before returning it.
//
// # Layouts
//
// All values are fixed-size byte aggregates:
//   - PublicKey: 32 bytes, a compressed curve point.
//   - SecretKey: 64 bytes, seed followed by the matching public key.
//   - Signature: 64 bytes, R followed by the little-endian scalar S.
//   - Seed: 32 bytes; Noise: 16 bytes.
//
// # Errors
//
// Verification classifies every malformed input into one of four returned
// errors (ErrInvalidPublicKey, ErrWeakPublicKey, ErrNonCanonicalSignature,
// ErrSignatureMismatch); it never panics on attacker-supplied data.
// Derivation refuses the all-zero seed with ErrZeroSeed.
//
// # Security notes
//
// Signatures whose S half is not strictly below the group order are
// rejected, closing the standard malleability vector. Public keys that are
// all zero or encode the identity element are rejected as weak. The curve
// and scalar arithmetic is delegated to filippo.io/edwards25519; secret
// scalars only flow through its constant-time operations.
package ed25519
