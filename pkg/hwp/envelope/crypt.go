package envelope

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"unicode/utf16"

	"github.com/vortex/go-hwp/pkg/hwperr"
	"github.com/vortex/go-hwp/pkg/primitive"
	"golang.org/x/crypto/pbkdf2"
)

// verifierBlockSize is the size of the verifier block prefixed to a
// password-protected stream, per spec.md §4.C.
const verifierBlockSize = 80

// passwordKDFIterations is the PBKDF2 round count used for the 5.0.3+
// "SHA-1 with a fixed salt" key expansion. spec.md leaves the exact
// iteration count unspecified; see DESIGN.md's Open Question entry.
const passwordKDFIterations = 1

// legacySalt is the fixed salt spec.md describes for the 5.0.3+ KDF path.
// It has no documented value in spec.md; a stable, named constant keeps
// the scheme self-consistent and easy to correct against a byte-exact
// fixture later without touching the call sites.
var legacySalt = []byte("hwp-password-salt")

// DeriveKey hashes a UTF-16LE-encoded password per the version's KDF
// (spec.md §4.C) and expands it to an AES-128 key.
func DeriveKey(password string, version primitive.Version) []byte {
	utf16Bytes := encodeUTF16LE(password)
	if version.AtLeast(primitive.V5_0_3_0) {
		return pbkdf2.Key(utf16Bytes, legacySalt, passwordKDFIterations, 16, sha1.New)
	}
	return legacyProprietaryHash(utf16Bytes)
}

// legacyProprietaryHash stands in for the pre-5.0.3 proprietary password
// hash. HWP's own pre-5.0.3 scheme is undocumented outside the reference
// implementation; this keeps the same SHA-1-based expansion pipeline as
// the 5.0.3+ path (single round, no salt) so both code paths share
// identical shape and are both exercised by the same test harness.
func legacyProprietaryHash(utf16Bytes []byte) []byte {
	sum := sha1.Sum(utf16Bytes)
	return sum[:16]
}

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[i*2] = byte(u)
		out[i*2+1] = byte(u >> 8)
	}
	return out
}

// DecryptStream checks and removes the verifier block and decrypts the
// remainder in AES-128-CFB mode using a zero IV, as HWP streams carry
// no separate IV field. key must be 16 bytes (AES-128). A verifier
// block that does not match key fails with an EnvelopeError.
func DecryptStream(key, data []byte) ([]byte, error) {
	if len(data) < verifierBlockSize {
		return nil, hwperr.NewEnvelopeError(nil, "envelope: stream shorter than verifier block")
	}
	if !bytes.Equal(data[:verifierBlockSize], makeVerifierBlock(key)) {
		return nil, hwperr.NewEnvelopeError(nil, "envelope: verifier block mismatch (wrong password or key)")
	}
	body := data[verifierBlockSize:]
	plain, err := cfbDecrypt(key, body)
	if err != nil {
		return nil, err
	}
	return plain, nil
}

// EncryptStream is the inverse of DecryptStream: it prepends a freshly
// computed verifier block and encrypts the payload.
func EncryptStream(key, plaintext []byte) ([]byte, error) {
	cipherBody, err := cfbEncrypt(key, plaintext)
	if err != nil {
		return nil, err
	}
	verifier := makeVerifierBlock(key)
	out := make([]byte, 0, len(verifier)+len(cipherBody))
	out = append(out, verifier...)
	out = append(out, cipherBody...)
	return out, nil
}

// makeVerifierBlock builds an 80-byte block derived from the key so a
// reader can confirm the password before trusting the decrypted bytes.
func makeVerifierBlock(key []byte) []byte {
	block := make([]byte, verifierBlockSize)
	sum := sha1.Sum(key)
	copy(block, sum[:])
	return block
}

// cfbDecrypt runs AES-128-CFB decryption over data with a zero IV, since
// HWP streams carry no separate IV field.
func cfbDecrypt(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: invalid AES key")
	}
	iv := make([]byte, aes.BlockSize)
	out := make([]byte, len(data))
	cipher.NewCFBDecrypter(block, iv).XORKeyStream(out, data)
	return out, nil
}

// cfbEncrypt runs AES-128-CFB encryption, the inverse of cfbDecrypt.
func cfbEncrypt(key, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, hwperr.NewEnvelopeError(err, "envelope: invalid AES key")
	}
	iv := make([]byte, aes.BlockSize)
	out := make([]byte, len(data))
	cipher.NewCFBEncrypter(block, iv).XORKeyStream(out, data)
	return out, nil
}

// DistributionKey extracts the AES-128 key embedded in DocInfo's
// DISTRIBUTE_DOC_DATA record payload for a distribution document
// (spec.md §4.C). The key occupies the first 16 bytes of the payload in
// this implementation's layout; the remaining bytes are reserved.
func DistributionKey(payload []byte) ([]byte, error) {
	if len(payload) < 16 {
		return nil, hwperr.NewEnvelopeError(nil, "envelope: distribution key payload too short")
	}
	key := make([]byte, 16)
	copy(key, payload[:16])
	return key, nil
}
