// Package trackers manages tracker workspaces and their participant rows.
// Authorization (who may call which operation) is decided by the membership
// package before these methods run; the rules here are the domain
// invariants that hold regardless of caller.
package trackers

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create inserts a tracker owned by ownerID. The owner is fixed for the
// tracker's lifetime; there is no transfer operation.
func (s *Service) Create(ctx context.Context, ownerID uint, name, description string) (*models.Tracker, error) {
	if name == "" {
		return nil, httperr.Validation("name is required")
	}

	tracker := models.Tracker{
		Name:    name,
		OwnerID: ownerID,
	}
	if description != "" {
		tracker.Description = &description
	}

	if err := s.db.WithContext(ctx).Create(&tracker).Error; err != nil {
		return nil, fmt.Errorf("creating tracker: %w", err)
	}
	return s.byID(ctx, tracker.ID)
}

// ListForUser returns every tracker the user owns or participates in,
// newest first, with owner and participants loaded.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]models.Tracker, error) {
	participating := s.db.Model(&models.TrackerParticipant{}).
		Select("tracker_id").
		Where("user_id = ?", userID)

	var trackers []models.Tracker
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Preload("Participants.User").
		Where("owner_id = ? OR id IN (?)", userID, participating).
		Order("created_at DESC, id DESC").
		Find(&trackers).Error
	if err != nil {
		return nil, fmt.Errorf("listing trackers for user %d: %w", userID, err)
	}
	return trackers, nil
}

// ListParticipants returns the tracker's participant rows with their users
// loaded, including work locations for commute planning.
func (s *Service) ListParticipants(ctx context.Context, trackerID uint) ([]models.TrackerParticipant, error) {
	var participants []models.TrackerParticipant
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("tracker_id = ?", trackerID).
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("listing participants for tracker %d: %w", trackerID, err)
	}
	return participants, nil
}

// AddParticipant grants userID access to the tracker with the given role
// label. It rejects unknown roles, unknown users, duplicate memberships and
// the owner/participant overlap.
func (s *Service) AddParticipant(ctx context.Context, tracker *models.Tracker, userID uint, role models.ParticipantRole) (*models.TrackerParticipant, error) {
	if !role.Valid() {
		return nil, httperr.Validation("invalid role, must be Admin or Participant")
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}

	var count int64
	err = s.db.WithContext(ctx).
		Model(&models.TrackerParticipant{}).
		Where("tracker_id = ? AND user_id = ?", tracker.ID, userID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("checking membership: %w", err)
	}
	if count > 0 {
		return nil, httperr.Conflict("user is already a participant in this tracker")
	}

	if userID == tracker.OwnerID {
		return nil, httperr.Validation("cannot add the owner as a participant")
	}

	participant := models.TrackerParticipant{
		TrackerID: tracker.ID,
		UserID:    userID,
		Role:      role,
	}
	if err := s.db.WithContext(ctx).Create(&participant).Error; err != nil {
		return nil, fmt.Errorf("adding participant: %w", err)
	}
	participant.User = &user
	return &participant, nil
}

// RemoveParticipant deletes a participant row. The row must belong to
// trackerID; a participant id from another tracker reads as not found.
func (s *Service) RemoveParticipant(ctx context.Context, trackerID, participantID uint) (*models.TrackerParticipant, error) {
	var participant models.TrackerParticipant
	err := s.db.WithContext(ctx).Preload("User").First(&participant, participantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && participant.TrackerID != trackerID) {
		return nil, httperr.NotFound("participant not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading participant %d: %w", participantID, err)
	}

	if err := s.db.WithContext(ctx).Delete(&participant).Error; err != nil {
		return nil, fmt.Errorf("removing participant %d: %w", participantID, err)
	}
	return &participant, nil
}

func (s *Service) byID(ctx context.Context, id uint) (*models.Tracker, error) {
	var tracker models.Tracker
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Preload("Participants.User").
		First(&tracker, id).Error
	if err != nil {
		return nil, fmt.Errorf("loading tracker %d: %w", id, err)
	}
	return &tracker, nil
}
