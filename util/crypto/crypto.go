// Package crypto provides password hashing and verification backed by scrypt.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Stored digest format: hex(salt) + ":" + hex(derivedKey).
const (
	saltSize = 16
	keySize  = 64

	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a fresh salted scrypt digest for the given password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from password and the stored salt and
// compares it against the stored key in constant time. A malformed stored
// digest is a plain mismatch; a key-derivation failure is returned as an
// error so callers do not confuse it with wrong credentials.
func VerifyPassword(password string, storedDigest string) (bool, error) {
	saltHex, keyHex, found := strings.Cut(storedDigest, ":")
	if !found || saltHex == "" || keyHex == "" {
		return false, nil
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, nil
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, nil
	}

	actual, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return false, err
	}

	// subtle.ConstantTimeCompare is only meaningful on equal-length slices.
	if len(expected) != len(actual) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(expected, actual) == 1, nil
}
