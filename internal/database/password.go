package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default cost (10).
// The plaintext is never logged.
func HashPassword(plain string) (string, bool) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		return "", false
	}
	return string(hash), true
}

// VerifyPassword reports whether plain matches the stored hash. Any bcrypt
// fault, including a malformed hash, counts as a mismatch.
func VerifyPassword(plain, hash string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return false
	}
	return true
}
