package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/middleware"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

// GetProfile returns the caller's own record.
func GetProfile(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.CurrentUser(c)

		user, err := svc.Get(c.Request.Context(), caller.UserID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpdateProfile edits the caller's own record, optionally rotating the
// password.
func UpdateProfile(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.CurrentUser(c)

		var req struct {
			Email         string   `json:"email"`
			Name          *string  `json:"name"`
			WorkAddress   *string  `json:"work_address"`
			WorkLatitude  *float64 `json:"work_latitude"`
			WorkLongitude *float64 `json:"work_longitude"`
			Password      string   `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.Validation("invalid payload"))
			return
		}

		user, err := svc.UpdateProfile(c.Request.Context(), caller.UserID, users.ProfileUpdate{
			Email:         req.Email,
			Name:          req.Name,
			WorkAddress:   req.WorkAddress,
			WorkLatitude:  req.WorkLatitude,
			WorkLongitude: req.WorkLongitude,
			Password:      req.Password,
		})
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}
