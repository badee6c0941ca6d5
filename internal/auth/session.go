package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// CookieName is the session cookie set on login and registration.
const CookieName = "auth-token"

// Resolver validates inbound request credentials against the user store.
type Resolver struct {
	db     *gorm.DB
	secret []byte
}

func NewResolver(db *gorm.DB, secret []byte) *Resolver {
	return &Resolver{db: db, secret: secret}
}

// Resolve extracts the session credential from the request, verifies it and
// re-confirms the referenced account still exists. A nil result is the sole
// signal for "unauthenticated": missing, expired, tampered and
// deleted-account credentials are indistinguishable to the caller.
func (r *Resolver) Resolve(c *gin.Context) *Claims {
	token := credentialFrom(c)
	if token == "" {
		return nil
	}

	claims := CheckToken(token, r.secret)
	if claims == nil {
		return nil
	}

	var count int64
	err := r.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("id = ?", claims.UserID).
		Count(&count).Error
	if err != nil || count == 0 {
		return nil
	}
	return claims
}

// credentialFrom prefers the session cookie and falls back to a bearer
// token for non-browser clients.
func credentialFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
