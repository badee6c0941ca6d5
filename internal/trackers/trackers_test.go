package trackers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
	"github.com/AimbotParce/SharedFlatTracker/internal/testdb"
)

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCreateTracker(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	owner := seedUser(t, db, "owner@example.com")

	tracker, err := svc.Create(context.Background(), owner.ID, "Barcelona hunt", "autumn search")
	require.NoError(t, err)
	assert.Equal(t, "Barcelona hunt", tracker.Name)
	assert.Equal(t, owner.ID, tracker.OwnerID)
	require.NotNil(t, tracker.Owner)
	assert.Equal(t, owner.Email, tracker.Owner.Email)
	require.NotNil(t, tracker.Description)
	assert.Equal(t, "autumn search", *tracker.Description)
	assert.Empty(t, tracker.Participants)
}

func TestCreateTrackerWithoutDescription(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	owner := seedUser(t, db, "owner@example.com")

	tracker, err := svc.Create(context.Background(), owner.ID, "Madrid hunt", "")
	require.NoError(t, err)
	assert.Nil(t, tracker.Description)
}

func TestCreateTrackerRequiresName(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	owner := seedUser(t, db, "owner@example.com")

	_, err := svc.Create(context.Background(), owner.ID, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, httperr.ErrValidation)
}

func TestListForUser(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	owned, err := svc.Create(ctx, owner.ID, "Owned hunt", "")
	require.NoError(t, err)
	joined, err := svc.Create(ctx, mate.ID, "Joined hunt", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, stranger.ID, "Unrelated hunt", "")
	require.NoError(t, err)

	_, err = svc.AddParticipant(ctx, joined, owner.ID, models.RoleParticipant)
	require.NoError(t, err)

	trackers, err := svc.ListForUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, trackers, 2)

	ids := []uint{trackers[0].ID, trackers[1].ID}
	assert.Contains(t, ids, owned.ID)
	assert.Contains(t, ids, joined.ID)

	for _, tracker := range trackers {
		require.NotNil(t, tracker.Owner)
		if tracker.ID == joined.ID {
			require.Len(t, tracker.Participants, 1)
			require.NotNil(t, tracker.Participants[0].User)
			assert.Equal(t, owner.Email, tracker.Participants[0].User.Email)
		}
	}
}

func TestListForUserEmpty(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	user := seedUser(t, db, "lonely@example.com")

	trackers, err := svc.ListForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, trackers)
}

func TestAddParticipant(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	tracker, err := svc.Create(ctx, owner.ID, "Hunt", "")
	require.NoError(t, err)

	participant, err := svc.AddParticipant(ctx, tracker, mate.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, tracker.ID, participant.TrackerID)
	assert.Equal(t, mate.ID, participant.UserID)
	assert.Equal(t, models.RoleAdmin, participant.Role)
	require.NotNil(t, participant.User)
	assert.Equal(t, mate.Email, participant.User.Email)
}

func TestAddParticipantRejections(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	tracker, err := svc.Create(ctx, owner.ID, "Hunt", "")
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, tracker, mate.ID, models.RoleParticipant)
	require.NoError(t, err)

	tests := []struct {
		name    string
		userID  uint
		role    models.ParticipantRole
		kind    error
		message string
	}{
		{
			name:    "unknown role",
			userID:  mate.ID,
			role:    "Viewer",
			kind:    httperr.ErrValidation,
			message: "invalid role",
		},
		{
			name:    "unknown user",
			userID:  9999,
			role:    models.RoleParticipant,
			kind:    httperr.ErrNotFound,
			message: "user not found",
		},
		{
			name:    "duplicate membership",
			userID:  mate.ID,
			role:    models.RoleParticipant,
			kind:    httperr.ErrConflict,
			message: "already a participant",
		},
		{
			name:    "owner as participant",
			userID:  owner.ID,
			role:    models.RoleParticipant,
			kind:    httperr.ErrValidation,
			message: "cannot add the owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddParticipant(ctx, tracker, tt.userID, tt.role)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestListParticipants(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	tracker, err := svc.Create(ctx, owner.ID, "Hunt", "")
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, tracker, mate.ID, models.RoleParticipant)
	require.NoError(t, err)

	participants, err := svc.ListParticipants(ctx, tracker.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	require.NotNil(t, participants[0].User)
	assert.Equal(t, mate.Email, participants[0].User.Email)
}

func TestRemoveParticipant(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	tracker, err := svc.Create(ctx, owner.ID, "Hunt", "")
	require.NoError(t, err)
	participant, err := svc.AddParticipant(ctx, tracker, mate.ID, models.RoleParticipant)
	require.NoError(t, err)

	removed, err := svc.RemoveParticipant(ctx, tracker.ID, participant.ID)
	require.NoError(t, err)
	require.NotNil(t, removed.User)
	assert.Equal(t, mate.Email, removed.User.Email)

	participants, err := svc.ListParticipants(ctx, tracker.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestRemoveParticipantWrongTracker(t *testing.T) {
	// A participant id can only be removed through its own tracker.
	db := testdb.Open(t)
	svc := NewService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	mate := seedUser(t, db, "mate@example.com")
	tracker, err := svc.Create(ctx, owner.ID, "Hunt", "")
	require.NoError(t, err)
	other, err := svc.Create(ctx, owner.ID, "Other hunt", "")
	require.NoError(t, err)
	participant, err := svc.AddParticipant(ctx, tracker, mate.ID, models.RoleParticipant)
	require.NoError(t, err)

	_, err = svc.RemoveParticipant(ctx, other.ID, participant.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, httperr.ErrNotFound)

	_, err = svc.RemoveParticipant(ctx, tracker.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
