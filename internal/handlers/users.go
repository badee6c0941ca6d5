package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

// ListUsers returns the user directory for participant pickers and commute
// forms.
func ListUsers(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		views := make([]directoryUser, 0, len(list))
		for i := range list {
			views = append(views, newDirectoryUser(&list[i]))
		}
		c.JSON(http.StatusOK, views)
	}
}

// CreateUser creates an account on behalf of someone else, e.g. a flatmate
// without their own registration.
func CreateUser(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.CreateUser(c.Request.Context(), c.PostForm("email"), c.PostForm("name"), c.PostForm("password"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"createdAt": user.CreatedAt,
		})
	}
}
