// Package auth holds the authentication core: password digests and signed
// bearer tokens. Both are pure wrappers around their primitives with no
// shared mutable state, so every function and method here is safe for
// concurrent use.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// maxPasswordLen bounds hashing cost; longer inputs are truncated, not
	// rejected, so verification stays deterministic for any input.
	maxPasswordLen = 128

	pbkdf2Rounds  = 29000
	pbkdf2SaltLen = 16
	pbkdf2KeyLen  = sha256.Size

	digestPrefix = "$pbkdf2-sha256$"
)

// HashPassword derives a salted one-way digest of password in the
// pbkdf2_sha256 modular-crypt format:
//
//	$pbkdf2-sha256$<rounds>$<salt>$<checksum>
//
// A fresh random salt is drawn per call, so two digests of the same password
// differ while both verify against it.
func HashPassword(password string) (string, error) {
	password = truncate(password)

	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Rounds, pbkdf2KeyLen, sha256.New)

	return digestPrefix + strconv.Itoa(pbkdf2Rounds) +
		"$" + encodeAB64(salt) +
		"$" + encodeAB64(key), nil
}

// VerifyPassword checks password against a stored digest. A wrong password
// returns (false, nil); an error is returned only when the stored digest
// itself is malformed.
func VerifyPassword(password, digest string) (bool, error) {
	password = truncate(password)

	rounds, salt, want, err := parseDigest(digest)
	if err != nil {
		return false, err
	}

	got := pbkdf2.Key([]byte(password), salt, rounds, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func truncate(password string) string {
	if len(password) > maxPasswordLen {
		return password[:maxPasswordLen]
	}
	return password
}

func parseDigest(digest string) (rounds int, salt, checksum []byte, err error) {
	rest, ok := strings.CutPrefix(digest, digestPrefix)
	if !ok {
		return 0, nil, nil, fmt.Errorf("password digest: unsupported scheme")
	}

	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return 0, nil, nil, fmt.Errorf("password digest: malformed")
	}

	rounds, err = strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return 0, nil, nil, fmt.Errorf("password digest: bad rounds %q", parts[0])
	}
	if salt, err = decodeAB64(parts[1]); err != nil {
		return 0, nil, nil, fmt.Errorf("password digest: bad salt: %w", err)
	}
	if checksum, err = decodeAB64(parts[2]); err != nil {
		return 0, nil, nil, fmt.Errorf("password digest: bad checksum: %w", err)
	}
	return rounds, salt, checksum, nil
}

// Adapted base64 per the modular-crypt convention: '.' instead of '+',
// no padding.
func encodeAB64(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
