package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/middleware"
	"github.com/AimbotParce/SharedFlatTracker/internal/trackers"
)

// ListTrackers returns every tracker the caller owns or participates in.
func ListTrackers(svc *trackers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.CurrentUser(c)

		list, err := svc.ListForUser(c.Request.Context(), caller.UserID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		views := make([]trackerView, 0, len(list))
		for i := range list {
			views = append(views, newTrackerView(&list[i]))
		}
		c.JSON(http.StatusOK, views)
	}
}

// CreateTracker creates a workspace owned by the caller.
func CreateTracker(svc *trackers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.CurrentUser(c)

		tracker, err := svc.Create(c.Request.Context(), caller.UserID, c.PostForm("name"), c.PostForm("description"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, newTrackerView(tracker))
	}
}

// trackerIDParam parses the :trackerId path segment. On failure it writes
// the validation response itself and reports false.
func trackerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("trackerId"), 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.Validation("invalid tracker ID"))
		return 0, false
	}
	return uint(id), true
}
