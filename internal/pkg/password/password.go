package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Changing these invalidates every stored hash, so they
// are fixed for the lifetime of the users table.
const (
	iterations = 100_000
	keyLen     = 64
	saltLen    = 16
)

// Hash derives a PBKDF2-SHA512 key from the password under a fresh random
// salt. Both the derived key and the salt are returned hex-encoded.
func Hash(password string) (hash, salt string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return hex.EncodeToString(key), salt, nil
}

// Verify recomputes the derivation with the stored salt and compares the
// encoded output in constant time.
func Verify(password, hash, salt string) bool {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(hash)) == 1
}
