package envelope

import (
	"bytes"
	"testing"

	"github.com/vortex/go-hwp/pkg/primitive"
)

func TestInflateDeflateRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeated: " +
		"the quick brown fox jumps over the lazy dog")
	compressed, err := Deflate(original)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	if bytes.Equal(compressed, original) {
		t.Fatal("expected compressed output to differ from input")
	}
	decompressed, err := Inflate(compressed)
	if err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Fatal("round-trip mismatch")
	}
}

func TestEncryptDecryptStreamRoundTrip(t *testing.T) {
	key := DeriveKey("sesame", primitive.V5_0_3_0)
	plaintext := []byte("paragraph text that lives inside a section stream")

	encrypted, err := EncryptStream(key, plaintext)
	if err != nil {
		t.Fatalf("EncryptStream: %v", err)
	}
	if len(encrypted) != verifierBlockSize+len(plaintext) {
		t.Fatalf("unexpected encrypted length %d", len(encrypted))
	}

	decrypted, err := DecryptStream(key, encrypted)
	if err != nil {
		t.Fatalf("DecryptStream: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round-trip mismatch: got %q want %q", decrypted, plaintext)
	}
}

func TestDeriveKeyVersionPaths(t *testing.T) {
	pre := DeriveKey("sesame", primitive.Version{Major: 5, Minor: 0, Micro: 0, Build: 0})
	post := DeriveKey("sesame", primitive.V5_0_3_0)
	if len(pre) != 16 || len(post) != 16 {
		t.Fatalf("expected 16-byte AES-128 keys, got %d and %d", len(pre), len(post))
	}
}

func TestDistributionKey(t *testing.T) {
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = byte(i)
	}
	key, err := DistributionKey(payload)
	if err != nil {
		t.Fatalf("DistributionKey: %v", err)
	}
	if !bytes.Equal(key, payload[:16]) {
		t.Fatal("expected key to be first 16 bytes of payload")
	}
}
