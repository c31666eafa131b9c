package x25519_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"signet/sign/ed25519"
	"signet/sign/x25519"
)

// RFC 7748 §6.1 Diffie-Hellman test vectors.
const (
	alicePriv  = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	alicePub   = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
	bobPriv    = "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb"
	bobPub     = "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f"
	sharedWant = "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742"
)

func mustKey32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("bad fixture %q", s)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

func TestRFC7748Vectors(t *testing.T) {
	aSK := x25519.SecretKey(mustKey32(t, alicePriv))
	bSK := x25519.SecretKey(mustKey32(t, bobPriv))

	aPK, err := aSK.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if aPK != x25519.PublicKey(mustKey32(t, alicePub)) {
		t.Fatalf("alice public key mismatch: got %x", aPK)
	}
	bPK, err := bSK.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if bPK != x25519.PublicKey(mustKey32(t, bobPub)) {
		t.Fatalf("bob public key mismatch: got %x", bPK)
	}

	s1, err := aSK.SharedSecret(bPK)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	s2, err := bSK.SharedSecret(aPK)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	want := mustKey32(t, sharedWant)
	if s1 != want || s2 != want {
		t.Fatalf("shared secret mismatch:\nalice %x\nbob   %x\nwant  %x", s1, s2, want)
	}
}

func TestGenerateAndAgree(t *testing.T) {
	a, err := x25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := x25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	s1, err := a.SK.SharedSecret(b.PK)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	s2, err := b.SK.SharedSecret(a.PK)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if s1 != s2 {
		t.Fatal("parties disagree on the shared secret")
	}
	if s1 == ([32]byte{}) {
		t.Fatal("shared secret is zero")
	}
}

func TestLowOrderPeerRejected(t *testing.T) {
	kp, err := x25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	var zeroPeer x25519.PublicKey
	if _, err := kp.SK.SharedSecret(zeroPeer); err == nil {
		t.Fatal("expected error for low-order peer key")
	}
}

func TestConversionFromEd25519(t *testing.T) {
	seedA := ed25519.Seed{0xa1}
	seedB := ed25519.Seed{0xb2}

	edA, err := ed25519.KeyPairFromSeed(seedA)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}
	edB, err := ed25519.KeyPairFromSeed(seedB)
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %v", err)
	}

	skA := x25519.SecretKeyFromEd25519Seed(seedA)
	skB := x25519.SecretKeyFromEd25519Seed(seedB)
	pkA, err := x25519.PublicKeyFromEd25519(edA.PK)
	if err != nil {
		t.Fatalf("PublicKeyFromEd25519: %v", err)
	}
	pkB, err := x25519.PublicKeyFromEd25519(edB.PK)
	if err != nil {
		t.Fatalf("PublicKeyFromEd25519: %v", err)
	}

	// The converted secret must match the converted public key.
	derivedA, err := skA.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if derivedA != pkA {
		t.Fatalf("converted keys disagree:\nfrom seed %x\nfrom pk   %x", derivedA, pkA)
	}

	s1, err := skA.SharedSecret(pkB)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	s2, err := skB.SharedSecret(pkA)
	if err != nil {
		t.Fatalf("SharedSecret: %v", err)
	}
	if s1 != s2 {
		t.Fatal("converted identities disagree on the shared secret")
	}
}

func TestGenerateEntropyFailure(t *testing.T) {
	if _, err := x25519.GenerateKeyPair(bytes.NewReader([]byte{1})); err == nil {
		t.Fatal("expected error from short entropy source")
	}
}
