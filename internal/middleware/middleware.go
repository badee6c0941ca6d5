// Package middleware holds the edge-level request filters: the navigation
// route guard, the API session requirement and the request logger. All of
// them run before any domain logic.
package middleware

import (
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AimbotParce/SharedFlatTracker/internal/auth"
)

const userKey = "currentUser"

// CurrentUser returns the session claims stored by Guard or RequireUser,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(userKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// authPages are reachable only without a session; with one they bounce to
// the authenticated landing page.
var authPages = map[string]bool{
	"/login":    true,
	"/register": true,
}

// Guard classifies every page navigation as public, asset or protected and
// enforces the session redirects. API routes are passed through untouched;
// they answer 401 in JSON via RequireUser instead of redirecting.
func Guard(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path

		if strings.HasPrefix(p, "/api/") {
			c.Next()
			return
		}
		// Build artifacts and anything with a file extension pass through.
		if strings.HasPrefix(p, "/assets/") || path.Ext(p) != "" {
			c.Next()
			return
		}

		claims := resolver.Resolve(c)

		if authPages[p] {
			if claims != nil {
				c.Redirect(http.StatusFound, "/trackers")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if claims == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, claims)
		c.Next()
	}
}

// RequireUser rejects unauthenticated API calls with a JSON 401 and makes
// the session claims available to handlers via CurrentUser.
func RequireUser(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolver.Resolve(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(userKey, claims)
		c.Next()
	}
}

// RequestLogger tags each request with a generated id and logs one line
// when it completes. Unexpected errors recorded on the context get their
// full detail here; callers only ever see the generic message.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(attrs, "errors", c.Errors.String())...)
			return
		}
		log.Info("request", attrs...)
	}
}
