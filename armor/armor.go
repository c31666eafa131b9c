package armor

import (
	"crypto/sha256"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"

	"signet/sign/ed25519"
)

const (
	publicBlockType = "PUBLIC KEY"
	secretBlockType = "PRIVATE KEY"
)

// oidEd25519 is the id-Ed25519 object identifier from RFC 8410.
var oidEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}

// ErrNoPEMBlock is returned when the input contains no PEM block.
var ErrNoPEMBlock = errors.New("armor: no PEM block found")

// subjectPublicKeyInfo is the RFC 8410 public key structure.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// oneAsymmetricKey is the PKCS#8 v1 private key structure.
type oneAsymmetricKey struct {
	Version    int
	Algorithm  pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// EncodePublicKey armors a public key as a "PUBLIC KEY" PEM block.
func EncodePublicKey(pk ed25519.PublicKey) ([]byte, error) {
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{Algorithm: oidEd25519},
		PublicKey: asn1.BitString{Bytes: pk.Slice(), BitLength: ed25519.PublicKeySize * 8},
	})
	if err != nil {
		return nil, fmt.Errorf("armor: marshaling public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicBlockType, Bytes: der}), nil
}

// DecodePublicKey dearmors a "PUBLIC KEY" PEM block.
func DecodePublicKey(data []byte) (ed25519.PublicKey, error) {
	var pk ed25519.PublicKey

	block, _ := pem.Decode(data)
	if block == nil {
		return pk, ErrNoPEMBlock
	}
	if block.Type != publicBlockType {
		return pk, fmt.Errorf("armor: unexpected PEM block type %q", block.Type)
	}

	var spki subjectPublicKeyInfo
	if rest, err := asn1.Unmarshal(block.Bytes, &spki); err != nil {
		return pk, fmt.Errorf("armor: parsing public key: %w", err)
	} else if len(rest) > 0 {
		return pk, errors.New("armor: trailing data after public key")
	}
	if !spki.Algorithm.Algorithm.Equal(oidEd25519) {
		return pk, fmt.Errorf("armor: unexpected key algorithm %v", spki.Algorithm.Algorithm)
	}
	if spki.PublicKey.BitLength != ed25519.PublicKeySize*8 {
		return pk, fmt.Errorf("armor: public key is %d bits, want %d", spki.PublicKey.BitLength, ed25519.PublicKeySize*8)
	}
	return ed25519.PublicKeyFromBytes(spki.PublicKey.Bytes)
}

// EncodeSecretKey armors a secret key as a "PRIVATE KEY" PEM block holding
// its seed.
func EncodeSecretKey(sk ed25519.SecretKey) ([]byte, error) {
	seed := sk.Seed()
	curvePrivateKey, err := asn1.Marshal(seed.Slice())
	if err != nil {
		return nil, fmt.Errorf("armor: marshaling seed: %w", err)
	}
	der, err := asn1.Marshal(oneAsymmetricKey{
		Version:    0,
		Algorithm:  pkix.AlgorithmIdentifier{Algorithm: oidEd25519},
		PrivateKey: curvePrivateKey,
	})
	if err != nil {
		return nil, fmt.Errorf("armor: marshaling secret key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: secretBlockType, Bytes: der}), nil
}

// DecodeSecretKey dearmors a "PRIVATE KEY" PEM block and re-derives the
// full secret key from the embedded seed.
func DecodeSecretKey(data []byte) (ed25519.SecretKey, error) {
	var sk ed25519.SecretKey

	block, _ := pem.Decode(data)
	if block == nil {
		return sk, ErrNoPEMBlock
	}
	if block.Type != secretBlockType {
		return sk, fmt.Errorf("armor: unexpected PEM block type %q", block.Type)
	}

	var key oneAsymmetricKey
	if rest, err := asn1.Unmarshal(block.Bytes, &key); err != nil {
		return sk, fmt.Errorf("armor: parsing secret key: %w", err)
	} else if len(rest) > 0 {
		return sk, errors.New("armor: trailing data after secret key")
	}
	if key.Version != 0 {
		return sk, fmt.Errorf("armor: unsupported PKCS#8 version %d", key.Version)
	}
	if !key.Algorithm.Algorithm.Equal(oidEd25519) {
		return sk, fmt.Errorf("armor: unexpected key algorithm %v", key.Algorithm.Algorithm)
	}

	var seedBytes []byte
	if rest, err := asn1.Unmarshal(key.PrivateKey, &seedBytes); err != nil {
		return sk, fmt.Errorf("armor: parsing seed: %w", err)
	} else if len(rest) > 0 {
		return sk, errors.New("armor: trailing data after seed")
	}
	seed, err := ed25519.SeedFromBytes(seedBytes)
	if err != nil {
		return sk, err
	}

	kp, err := ed25519.KeyPairFromSeed(seed)
	if err != nil {
		return sk, err
	}
	return kp.SK, nil
}

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pk ed25519.PublicKey) string {
	sum := sha256.Sum256(pk.Slice())
	return hex.EncodeToString(sum[:10])
}
