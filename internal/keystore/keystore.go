package keystore

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"signet/internal/memzero"
	"signet/sign/ed25519"
)

// The current version of the encrypted blob format stored on disk.
const formatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// key file has been modified.
var ErrWrongPassphrase = errors.New("keystore: wrong passphrase or corrupted key file")

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Params are scrypt cost parameters for the key-encryption key.
type Params struct {
	N, R, P int
}

// DefaultParams returns the scrypt cost used for new key files.
func DefaultParams() Params { return Params{N: 1 << 15, R: 8, P: 1} }

// Save seals sk under the passphrase and writes it to path with 0600
// permissions.
func Save(path, passphrase string, sk ed25519.SecretKey, params Params) error {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return fmt.Errorf("keystore: reading salt: %w", err)
	}

	kek, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return fmt.Errorf("keystore: deriving key: %w", err)
	}
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key
	ct := aead.Seal(nil, nonce[:], sk.Slice(), salt[:])

	blob, err := json.Marshal(envelope{
		V:      formatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0o600)
}

// Load reads and opens the key file at path using the passphrase.
func Load(path, passphrase string) (ed25519.SecretKey, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return ed25519.SecretKey{}, err
	}

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return ed25519.SecretKey{}, fmt.Errorf("keystore: parsing key file: %w", err)
	}
	if env.V > formatVersion {
		return ed25519.SecretKey{}, fmt.Errorf("keystore: unsupported key file version %d", env.V)
	}

	kek, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return ed25519.SecretKey{}, fmt.Errorf("keystore: deriving key: %w", err)
	}
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return ed25519.SecretKey{}, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	raw, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return ed25519.SecretKey{}, ErrWrongPassphrase
	}
	defer memzero.Zero(raw)

	return ed25519.SecretKeyFromBytes(raw)
}
