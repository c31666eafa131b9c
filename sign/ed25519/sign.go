package ed25519

import (
	"crypto/sha512"

	"filippo.io/edwards25519"

	"signet/internal/memzero"
)

// SignOptions control optional signing behavior.
type SignOptions struct {
	// Noise randomizes the nonce when non-nil. The signature stays
	// verifiable but is no longer deterministic for a given message.
	Noise *Noise

	// SelfVerify re-verifies the signature against the signer's public key
	// before returning it, trading latency for resilience against fault
	// attacks.
	SelfVerify bool
}

// Sign computes a signature over message. A nil opts produces the
// deterministic RFC 8032 signature. Sign only returns an error when
// SelfVerify is enabled and the fresh signature does not verify.
func (sk SecretKey) Sign(message []byte, opts *SignOptions) (Signature, error) {
	seed, public := sk[:SeedSize], sk[SeedSize:]

	// az is clamped in place: the noise transcript below hashes the clamped
	// form, and SetBytesWithClamping is idempotent over it.
	az := sha512.Sum512(seed)
	clamp(az[:32])
	defer memzero.Zero(az[:])

	s, err := edwards25519.NewScalar().SetBytesWithClamping(az[:32])
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}

	// Nonce input: noise || az mixes fresh randomness with the whole
	// expanded key; az[32:] alone is the deterministic prefix.
	nh := sha512.New()
	if opts != nil && opts.Noise != nil {
		nh.Write(opts.Noise[:])
		nh.Write(az[:])
	} else {
		nh.Write(az[32:])
	}
	nh.Write(message)
	nonceDigest := make([]byte, 0, sha512.Size)
	nonceDigest = nh.Sum(nonceDigest)
	r := setUniformScalar(nonceDigest)
	memzero.Zero(nonceDigest)

	var sig Signature
	R := new(edwards25519.Point).ScalarBaseMult(r)
	copy(sig[:32], R.Bytes())

	kh := sha512.New()
	kh.Write(sig[:32])
	kh.Write(public)
	kh.Write(message)
	hramDigest := make([]byte, 0, sha512.Size)
	hramDigest = kh.Sum(hramDigest)
	k := setUniformScalar(hramDigest)

	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)
	copy(sig[32:], S.Bytes())

	if opts != nil && opts.SelfVerify {
		if err := sk.Public().Verify(message, sig); err != nil {
			return Signature{}, ErrSelfVerification
		}
	}
	return sig, nil
}

// setUniformScalar reduces a 64-byte digest modulo the group order. The
// digest length is fixed by the callers, so the conversion cannot fail.
func setUniformScalar(digest []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		panic("ed25519: internal error: reducing digest failed")
	}
	return s
}
