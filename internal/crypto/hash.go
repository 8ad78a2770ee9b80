package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor. Fixed at 10 to keep hashing time
// predictable; raising it invalidates nothing but slows registration/login.
const hashCost = 10

// HashPassword hashes a password with bcrypt. The salt is embedded in the
// returned hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether a password matches the given bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
