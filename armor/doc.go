// Package armor converts Ed25519 key material to and from OpenSSL-compatible
// PEM text.
//
// # Formats
//
// Public keys armor to "PUBLIC KEY" blocks holding an RFC 8410
// SubjectPublicKeyInfo; secret keys armor to "PRIVATE KEY" blocks holding a
// PKCS#8 v1 structure wrapping the 32-byte seed. Dearmoring a secret key
// re-derives the key pair from the seed, so the embedded public half is
// always consistent.
//
// Armoring never alters the underlying byte layouts; it is a pure textual
// codec around them.
package armor
