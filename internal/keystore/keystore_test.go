package keystore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"signet/internal/keystore"
	"signet/sign/ed25519"
)

// testParams keeps scrypt cheap in tests.
func testParams() keystore.Params { return keystore.Params{N: 1 << 10, R: 8, P: 1} }

func TestSaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "secret.key")
	pass := "pass"

	kp, err := ed25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	if err := keystore.Save(path, pass, kp.SK, testParams()); err != nil {
		t.Fatalf("save key: %v", err)
	}

	got, err := keystore.Load(path, pass)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if got != kp.SK {
		t.Fatal("mismatch after load")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat key file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("key file permissions %o, want 600", perm)
	}
}

func TestWrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "secret.key")

	kp, err := ed25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if err := keystore.Save(path, "correct", kp.SK, testParams()); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if _, err := keystore.Load(path, "wrong"); !errors.Is(err, keystore.ErrWrongPassphrase) {
		t.Fatalf("got %v, want ErrWrongPassphrase", err)
	}
}

func TestTamperedFile_Fails(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "secret.key")
	pass := "pass"

	kp, err := ed25519.GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if err := keystore.Save(path, pass, kp.SK, testParams()); err != nil {
		t.Fatalf("save key: %v", err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key file: %v", err)
	}
	// Flip a byte inside the base64 ciphertext.
	blob[len(blob)-10] ^= 1
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		t.Fatalf("write tampered file: %v", err)
	}

	if _, err := keystore.Load(path, pass); err == nil {
		t.Fatal("expected error for tampered key file")
	}
}
