package utils

import "golang.org/x/crypto/bcrypt"

// passwordHashCost is deliberately above bcrypt.DefaultCost; signup is the
// only place hashing happens, so the extra latency is confined to one request.
const passwordHashCost = 14

// HashPassword hashes the password a signup document carries before it is
// stored.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with its hashed version.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
