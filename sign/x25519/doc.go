// Package x25519 implements the X25519 Diffie-Hellman exchange and the
// conversion of Ed25519 key material to X25519 form.
//
// # Overview
//
// Each party holds a clamped 32-byte secret scalar and publishes the
// corresponding Montgomery u-coordinate. SharedSecret combines a local
// secret with a peer public key into a 32-byte shared value.
//
// Conversion reuses the Edwards curve arithmetic: an Ed25519 public key
// maps to its Montgomery form birationally, and an Ed25519 seed expands to
// the same clamped scalar the signature scheme signs with, so one seed can
// back both a signing and an exchange identity.
//
// # Security notes
//
// SharedSecret rejects low-order peer keys, whose contributions would
// collapse the shared secret to a value independent of the local key.
package x25519
