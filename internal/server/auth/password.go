// Package auth implements the credential primitives of the server:
// password hashing, token issuance/verification, and the per-request
// security context carrying the verified subject.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of the plaintext. Every call
// uses a fresh random salt, so hashing the same plaintext twice yields
// two different records that both verify.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash record.
// The comparison is constant-time with respect to the secret. A malformed
// hash record yields false, never a panic.
func CheckPassword(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
