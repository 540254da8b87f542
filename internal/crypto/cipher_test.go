package crypto

import (
	"bytes"
	"testing"
)

func testCipher(t *testing.T) *Cipher {
	t.Helper()
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	c, err := NewCipherFromBase64(key)
	if err != nil {
		t.Fatalf("NewCipherFromBase64: %v", err)
	}
	return c
}

func TestCipher_Roundtrip(t *testing.T) {
	c := testCipher(t)

	plaintext := []byte("patient presented with mild symptoms")
	sealed, err := c.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Fatalf("ciphertext contains plaintext")
	}

	opened, err := c.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("roundtrip mismatch: got %q", opened)
	}
}

func TestCipher_NonceMakesCiphertextsDiffer(t *testing.T) {
	c := testCipher(t)

	s1, err := c.Encrypt([]byte("same plaintext"))
	if err != nil {
		t.Fatalf("first Encrypt: %v", err)
	}
	s2, err := c.Encrypt([]byte("same plaintext"))
	if err != nil {
		t.Fatalf("second Encrypt: %v", err)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("two encryptions produced identical ciphertexts")
	}
}

func TestCipher_WrongKeyFails(t *testing.T) {
	c1 := testCipher(t)
	c2 := testCipher(t)

	sealed, err := c1.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := c2.Decrypt(sealed); err == nil {
		t.Fatalf("decryption with a different key succeeded")
	}
}

func TestCipher_TamperedCiphertextFails(t *testing.T) {
	c := testCipher(t)

	sealed, err := c.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	sealed[len(sealed)-1] ^= 0x01
	if _, err := c.Decrypt(sealed); err == nil {
		t.Fatalf("tampered ciphertext decrypted")
	}
}

func TestCipher_StringRoundtrip(t *testing.T) {
	c := testCipher(t)

	encoded, err := c.EncryptString("diagnosis: all clear")
	if err != nil {
		t.Fatalf("EncryptString: %v", err)
	}
	if encoded == "diagnosis: all clear" {
		t.Fatalf("encrypted string equals plaintext")
	}

	decoded, err := c.DecryptString(encoded)
	if err != nil {
		t.Fatalf("DecryptString: %v", err)
	}
	if decoded != "diagnosis: all clear" {
		t.Fatalf("roundtrip mismatch: got %q", decoded)
	}
}

func TestNewCipher_RejectsBadKey(t *testing.T) {
	if _, err := NewCipher([]byte("too short")); err == nil {
		t.Fatalf("short key accepted")
	}
	if _, err := NewCipherFromBase64("not base64!!"); err == nil {
		t.Fatalf("invalid base64 key accepted")
	}
}

func TestCipher_DecryptTooShort(t *testing.T) {
	c := testCipher(t)
	if _, err := c.Decrypt([]byte{0x01, 0x02}); err == nil {
		t.Fatalf("truncated ciphertext accepted")
	}
}
