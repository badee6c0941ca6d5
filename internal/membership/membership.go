// Package membership derives a caller's standing on a tracker and enforces
// it. Every tracker-scoped operation goes through this single check instead
// of re-deriving ownership in each handler.
package membership

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// Standing classifies a (tracker, caller) pair. It is derived per request,
// never persisted.
type Standing int

const (
	// Stranger has no relation to the tracker and no rights on it.
	Stranger Standing = iota
	// Member holds a participant row (either role label) and may read the
	// tracker, its flats and its commute data.
	Member
	// Owner created the tracker and additionally manages flats and
	// participants.
	Owner
)

func (s Standing) String() string {
	switch s {
	case Owner:
		return "owner"
	case Member:
		return "member"
	default:
		return "stranger"
	}
}

// Checker answers authorization questions for tracker-scoped operations.
type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// Classify loads the tracker and derives userID's standing on it. A missing
// tracker yields a not-found error before any permission decision.
func (ch *Checker) Classify(ctx context.Context, trackerID, userID uint) (*models.Tracker, Standing, error) {
	var tracker models.Tracker
	err := ch.db.WithContext(ctx).First(&tracker, trackerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Stranger, httperr.NotFound("tracker not found")
	}
	if err != nil {
		return nil, Stranger, fmt.Errorf("loading tracker %d: %w", trackerID, err)
	}

	if tracker.OwnerID == userID {
		return &tracker, Owner, nil
	}

	var count int64
	err = ch.db.WithContext(ctx).
		Model(&models.TrackerParticipant{}).
		Where("tracker_id = ? AND user_id = ?", trackerID, userID).
		Count(&count).Error
	if err != nil {
		return nil, Stranger, fmt.Errorf("loading participation for tracker %d: %w", trackerID, err)
	}
	if count > 0 {
		return &tracker, Member, nil
	}
	return &tracker, Stranger, nil
}

// RequireMember returns the tracker when userID may read it, i.e. is its
// owner or one of its participants.
func (ch *Checker) RequireMember(ctx context.Context, trackerID, userID uint) (*models.Tracker, error) {
	tracker, standing, err := ch.Classify(ctx, trackerID, userID)
	if err != nil {
		return nil, err
	}
	if standing == Stranger {
		return nil, httperr.Forbidden("access denied")
	}
	return tracker, nil
}

// RequireOwner returns the tracker when userID owns it. The action name is
// used in the refusal message, e.g. "add participants".
func (ch *Checker) RequireOwner(ctx context.Context, trackerID, userID uint, action string) (*models.Tracker, error) {
	tracker, standing, err := ch.Classify(ctx, trackerID, userID)
	if err != nil {
		return nil, err
	}
	if standing != Owner {
		return nil, httperr.Forbidden(fmt.Sprintf("only the tracker owner can %s", action))
	}
	return tracker, nil
}
