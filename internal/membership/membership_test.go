package membership

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

type fixture struct {
	db      *gorm.DB
	checker *Checker
	owner   models.User
	member  models.User
	outside models.User
	tracker models.Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

	f := &fixture{
		db:      db,
		checker: NewChecker(db),
		owner:   models.User{Email: "owner@example.com", PasswordHash: "x"},
		member:  models.User{Email: "member@example.com", PasswordHash: "x"},
		outside: models.User{Email: "outside@example.com", PasswordHash: "x"},
	}
	require.NoError(t, db.Create(&f.owner).Error)
	require.NoError(t, db.Create(&f.member).Error)
	require.NoError(t, db.Create(&f.outside).Error)

	f.tracker = models.Tracker{Name: "Madrid hunt", OwnerID: f.owner.ID}
	require.NoError(t, db.Create(&f.tracker).Error)
	require.NoError(t, db.Create(&models.TrackerParticipant{
		TrackerID: f.tracker.ID,
		UserID:    f.member.ID,
		Role:      models.RoleParticipant,
	}).Error)

	return f
}

func TestClassify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tracker, standing, err := f.checker.Classify(ctx, f.tracker.ID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, Owner, standing)
	assert.Equal(t, f.tracker.ID, tracker.ID)

	_, standing, err = f.checker.Classify(ctx, f.tracker.ID, f.member.ID)
	require.NoError(t, err)
	assert.Equal(t, Member, standing)

	_, standing, err = f.checker.Classify(ctx, f.tracker.ID, f.outside.ID)
	require.NoError(t, err)
	assert.Equal(t, Stranger, standing)
}

func TestClassifyMissingTracker(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.checker.Classify(context.Background(), 9999, f.owner.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestAdminRoleGrantsOnlyMembership(t *testing.T) {
	// The Admin label is stored but grants nothing beyond Participant.
	f := newFixture(t)
	admin := models.User{Email: "admin@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&admin).Error)
	require.NoError(t, f.db.Create(&models.TrackerParticipant{
		TrackerID: f.tracker.ID,
		UserID:    admin.ID,
		Role:      models.RoleAdmin,
	}).Error)

	_, standing, err := f.checker.Classify(context.Background(), f.tracker.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, Member, standing)

	_, err = f.checker.RequireOwner(context.Background(), f.tracker.ID, admin.ID, "add participants")
	assert.ErrorIs(t, err, httperr.ErrForbidden)
}

func TestRequireMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, userID := range []uint{f.owner.ID, f.member.ID} {
		tracker, err := f.checker.RequireMember(ctx, f.tracker.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, f.tracker.ID, tracker.ID)
	}

	_, err := f.checker.RequireMember(ctx, f.tracker.ID, f.outside.ID)
	assert.ErrorIs(t, err, httperr.ErrForbidden)
}

func TestRequireOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tracker, err := f.checker.RequireOwner(ctx, f.tracker.ID, f.owner.ID, "add participants")
	require.NoError(t, err)
	assert.Equal(t, f.tracker.ID, tracker.ID)

	_, err = f.checker.RequireOwner(ctx, f.tracker.ID, f.member.ID, "add participants")
	require.Error(t, err)
	assert.ErrorIs(t, err, httperr.ErrForbidden)
	assert.Contains(t, err.Error(), "only the tracker owner")

	_, err = f.checker.RequireOwner(ctx, f.tracker.ID, f.outside.ID, "remove participants")
	assert.ErrorIs(t, err, httperr.ErrForbidden)
}

func TestNotFoundPrecedesForbidden(t *testing.T) {
	// Existence is checked before permissions, so a stranger probing a
	// missing tracker learns nothing beyond "not found".
	f := newFixture(t)

	_, err := f.checker.RequireOwner(context.Background(), 9999, f.outside.ID, "add participants")
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}
