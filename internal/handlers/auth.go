// Package handlers wires the HTTP surface: request parsing, session
// handling and response shaping. Domain rules live in the service
// packages; handlers translate between them and gin.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/auth"
	"github.com/AimbotParce/SharedFlatTracker/internal/config"
	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

// Login checks credentials and starts a session.
func Login(svc *users.Service, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.Validation("invalid payload"))
			return
		}

		user, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		if err := startSession(c, cfg, user); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Ref()})
	}
}

// Register creates an account and starts a session right away.
func Register(svc *users.Service, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.Validation("invalid payload"))
			return
		}

		user, err := svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		if err := startSession(c, cfg, user); err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": user.Ref()})
	}
}

// Logout drops the session cookie.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(auth.CookieName, "", -1, "/", "", cfg.SecureCookies(), true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// startSession issues a signed token for user and sets the session cookie:
// http-only, lax same-site, secure outside development.
func startSession(c *gin.Context, cfg *config.Config, user *models.User) error {
	token, err := auth.IssueToken(user, []byte(cfg.JWTSecret), cfg.TokenValidity)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(cfg.TokenValidity.Seconds()), "/", "", cfg.SecureCookies(), true)
	return nil
}
