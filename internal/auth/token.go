package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// Claims is the payload carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint    `json:"userId"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
}

// IssueToken signs a session token for user with the given validity.
func IssueToken(user *models.User, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	return token.SignedString(secret)
}

// CheckToken verifies signature and expiry and returns the claims, or nil
// on any failure. Expired, tampered and malformed tokens are all treated
// the same way; callers must not distinguish between them.
func CheckToken(tokenString string, secret []byte) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}
