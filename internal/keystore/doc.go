// Package keystore persists secret keys encrypted under a passphrase.
//
// # Format
//
// A key file is a JSON envelope holding a random salt, the scrypt
// parameters and a ChaCha20-Poly1305 ciphertext of the raw secret key. The
// nonce is zero: the key is derived from a fresh salt per write, so it is
// never reused. The salt doubles as associated data, binding the ciphertext
// to its KDF inputs.
//
// # Errors
//
// Load returns ErrWrongPassphrase both for an incorrect passphrase and for
// a tampered ciphertext; the two are indistinguishable by construction.
package keystore
