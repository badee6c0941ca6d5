// Package auth implements the credential service (password hashing and
// signed session tokens) and the session resolver that turns an inbound
// request credential into a confirmed user identity.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for all stored hashes.
const bcryptCost = 12

// HashPassword returns the one-way bcrypt transform of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A mismatch is not
// an error condition.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
