package ed25519

import (
	"crypto/sha512"
	"crypto/subtle"

	"filippo.io/edwards25519"
)

// order is the group order L = 2^252 + 27742317777372353535851937790883648493
// in little-endian form.
var order = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// identityEncoding is the canonical compressed form of the neutral element.
var identityEncoding = [32]byte{0x01}

// Verify checks that sig is a valid signature over message under pk.
//
// It returns nil on success and otherwise one of ErrNonCanonicalSignature,
// ErrWeakPublicKey, ErrInvalidPublicKey or ErrSignatureMismatch. The checks
// run in that order and the first failure wins.
func (pk PublicKey) Verify(message []byte, sig Signature) error {
	if !scalarIsCanonical(sig[32:]) {
		return ErrNonCanonicalSignature
	}
	if isZero(pk[:]) || subtle.ConstantTimeCompare(pk[:], identityEncoding[:]) == 1 {
		return ErrWeakPublicKey
	}

	a, err := new(edwards25519.Point).SetBytes(pk[:])
	if err != nil {
		return ErrInvalidPublicKey
	}
	// Catches non-canonical encodings of the identity as well.
	if a.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return ErrWeakPublicKey
	}
	a.Negate(a)

	kh := sha512.New()
	kh.Write(sig[:32])
	kh.Write(pk[:])
	kh.Write(message)
	hramDigest := make([]byte, 0, sha512.Size)
	hramDigest = kh.Sum(hramDigest)
	h := setUniformScalar(hramDigest)

	s, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		// Unreachable after the canonicality gate above.
		return ErrNonCanonicalSignature
	}

	// R' = s*B - h*A, using the negated point; all operands are public, so
	// variable time is fine.
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(h, a, s)

	if subtle.ConstantTimeCompare(R.Bytes(), sig[:32]) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

// scalarIsCanonical reports whether s, read as a little-endian integer, is
// strictly below the group order. It runs in constant time even though its
// inputs are public, since the gate is part of the security contract.
func scalarIsCanonical(s []byte) bool {
	var c, n byte
	n = 1
	for i := 31; i >= 0; i-- {
		c |= byte((int(s[i])-int(order[i]))>>8) & n
		n &= byte((int(s[i]^order[i]) - 1) >> 8)
	}
	return c != 0
}
