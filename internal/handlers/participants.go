package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/membership"
	"github.com/AimbotParce/SharedFlatTracker/internal/middleware"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
	"github.com/AimbotParce/SharedFlatTracker/internal/trackers"
)

// ListParticipants returns the tracker's participants with their work
// locations, for members.
func ListParticipants(svc *trackers.Service, checker *membership.Checker) gin.HandlerFunc {
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

		participants, err := svc.ListParticipants(c.Request.Context(), trackerID)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		views := make([]participantView, 0, len(participants))
		for i := range participants {
			views = append(views, newParticipantView(&participants[i]))
		}
		c.JSON(http.StatusOK, views)
	}
}

// AddParticipant invites a user onto the tracker. Owner only.
func AddParticipant(svc *trackers.Service, checker *membership.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackerID, ok := trackerIDParam(c)
		if !ok {
			return
		}
		caller := middleware.CurrentUser(c)

		tracker, err := checker.RequireOwner(c.Request.Context(), trackerID, caller.UserID, "add participants")
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		userIDRaw := c.PostForm("userId")
		role := c.PostForm("role")
		if userIDRaw == "" || role == "" {
			httperr.Respond(c, httperr.Validation("user ID and role are required"))
			return
		}
		userID, err := strconv.ParseUint(userIDRaw, 10, 32)
		if err != nil {
			httperr.Respond(c, httperr.Validation("invalid user ID"))
			return
		}

		participant, err := svc.AddParticipant(c.Request.Context(), tracker, uint(userID), models.ParticipantRole(role))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, newParticipantView(participant))
	}
}

// RemoveParticipant deletes a participant row named by the participantId
// query parameter. Owner only; the row must belong to this tracker.
func RemoveParticipant(svc *trackers.Service, checker *membership.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackerID, ok := trackerIDParam(c)
		if !ok {
			return
		}
		caller := middleware.CurrentUser(c)

		if _, err := checker.RequireOwner(c.Request.Context(), trackerID, caller.UserID, "remove participants"); err != nil {
			httperr.Respond(c, err)
			return
		}

		participantIDRaw := c.Query("participantId")
		if participantIDRaw == "" {
			httperr.Respond(c, httperr.Validation("participant ID is required"))
			return
		}
		participantID, err := strconv.ParseUint(participantIDRaw, 10, 32)
		if err != nil {
			httperr.Respond(c, httperr.Validation("invalid participant ID"))
			return
		}

		participant, err := svc.RemoveParticipant(c.Request.Context(), trackerID, uint(participantID))
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		who := participant.UserID
		display := fmt.Sprintf("user %d", who)
		if participant.User != nil {
			display = participant.User.Email
			if participant.User.Name != nil && *participant.User.Name != "" {
				display = *participant.User.Name
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("%s has been removed from the tracker", display),
		})
	}
}
