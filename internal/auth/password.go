// Package auth provides password hashing and JWT token management for
// association authentication.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. 12 keeps hashing around 250ms on
// commodity hardware.
const hashCost = 12

// maxPasswordBytes is bcrypt's input ceiling. Longer passwords are truncated
// by byte length before hashing and verification so both sides agree.
const maxPasswordBytes = 72

// truncatePassword caps the password at bcrypt's 72-byte input limit.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword hashes the password with bcrypt at a fixed cost. The returned
// string is self-describing (embeds algorithm, cost and salt).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed hash fails closed: the function returns false rather than an
// error, so a corrupt stored hash can never authenticate anyone.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
