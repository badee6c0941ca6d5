package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/flats"
	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/membership"
	"github.com/AimbotParce/SharedFlatTracker/internal/middleware"
	"github.com/AimbotParce/SharedFlatTracker/internal/users"
)

// ListFlats returns the tracker's flats, newest first, each with its
// creator projection and commute summary.
func ListFlats(flatSvc *flats.Service, userSvc *users.Service, checker *membership.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackerID, ok := trackerIDParam(c)
		if !ok {
			return
		}
		caller := middleware.CurrentUser(c)

		if _, err := checker.RequireMember(c.Request.Context(), trackerID, caller.UserID); err != nil {
			httperr.Respond(c, err)
			return
		}

		list, err := flatSvc.List(c.Request.Context(), trackerID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		allUsers, err := userSvc.List(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		views := make([]flatView, 0, len(list))
		for i := range list {
			views = append(views, newFlatView(&list[i], allUsers))
		}
		c.JSON(http.StatusOK, views)
	}
}

// CreateFlat logs a new candidate flat under the tracker from a
// form-encoded body, including any per-participant commute estimates.
func CreateFlat(flatSvc *flats.Service, userSvc *users.Service, checker *membership.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackerID, ok := trackerIDParam(c)
		if !ok {
			return
		}
		caller := middleware.CurrentUser(c)

		if _, err := checker.RequireMember(c.Request.Context(), trackerID, caller.UserID); err != nil {
			httperr.Respond(c, err)
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			httperr.Respond(c, httperr.Validation("invalid form payload"))
			return
		}

		flat, err := flatSvc.Create(c.Request.Context(), trackerID, c.Request.PostForm)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		allUsers, err := userSvc.List(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, newFlatView(flat, allUsers))
	}
}

// UpdateFlat applies a partial, form-encoded update to the flat named by
// the body's flatId field. The flat must belong to the tracker in the path.
func UpdateFlat(flatSvc *flats.Service, userSvc *users.Service, checker *membership.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackerID, ok := trackerIDParam(c)
		if !ok {
			return
		}
		caller := middleware.CurrentUser(c)

		if _, err := checker.RequireMember(c.Request.Context(), trackerID, caller.UserID); err != nil {
			httperr.Respond(c, err)
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			httperr.Respond(c, httperr.Validation("invalid form payload"))
			return
		}
		form := c.Request.PostForm

		flatIDRaw := form.Get("flatId")
		if flatIDRaw == "" {
			httperr.Respond(c, httperr.Validation("flat ID is required"))
			return
		}
		flatID, err := strconv.ParseUint(flatIDRaw, 10, 32)
		if err != nil {
			httperr.Respond(c, httperr.Validation("invalid flat ID"))
			return
		}

		flat, err := flatSvc.Update(c.Request.Context(), trackerID, uint(flatID), form)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		allUsers, err := userSvc.List(c.Request.Context())
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, newFlatView(flat, allUsers))
	}
}
