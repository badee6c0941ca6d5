// Package users covers account lifecycle: registration, credential checks,
// the user directory and profile updates.
package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/auth"
	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// MinPasswordLength is the weakest password accepted anywhere.
const MinPasswordLength = 6

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates an account from the public registration form. Name is
// optional; a blank name is stored as null.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, httperr.Validation("email and password are required")
	}
	return s.create(ctx, email, password, name)
}

// CreateUser creates an account on someone's behalf; unlike Register, the
// name is required.
func (s *Service) CreateUser(ctx context.Context, email, name, password string) (*models.User, error) {
	if email == "" || name == "" || password == "" {
		return nil, httperr.Validation("email, name, and password are required")
	}
	return s.create(ctx, email, password, name)
}

func (s *Service) create(ctx context.Context, email, password, name string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, httperr.Validation("password must be at least %d characters long", MinPasswordLength)
	}

	taken, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Conflict("a user with this email already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: hash}
	if name != "" {
		user.Name = &name
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

// Authenticate checks an email/password pair. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, httperr.Validation("email and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.Unauthenticated("invalid email or password")
	}
	if err != nil {
		return nil, fmt.Errorf("loading user by email: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, httperr.Unauthenticated("invalid email or password")
	}
	return &user, nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}
	return &user, nil
}

// List returns the whole user directory, used by participant pickers and
// commute forms.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// ProfileUpdate carries a profile edit. Email is mandatory; the optional
// fields overwrite their stored values (nil clears). Password, when
// non-empty, rotates the credential.
type ProfileUpdate struct {
	Email         string
	Name          *string
	WorkAddress   *string
	WorkLatitude  *float64
	WorkLongitude *float64
	Password      string
}

// UpdateProfile applies in to the caller's own record and returns it.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*models.User, error) {
	if in.Email == "" {
		return nil, httperr.Validation("email is required")
	}

	taken, err := s.emailTaken(ctx, in.Email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.Conflict("email is already taken by another user")
	}

	updates := map[string]any{
		"email":          in.Email,
		"name":           normalizeText(in.Name),
		"work_address":   normalizeText(in.WorkAddress),
		"work_latitude":  in.WorkLatitude,
		"work_longitude": in.WorkLongitude,
	}

	if in.Password != "" {
		if len(in.Password) < MinPasswordLength {
			return nil, httperr.Validation("password must be at least %d characters long", MinPasswordLength)
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		updates["password_hash"] = hash
	}

	err = s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", userID, err)
	}
	return s.Get(ctx, userID)
}

// emailTaken reports whether email belongs to a user other than excludeID.
func (s *Service) emailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}
	return count > 0, nil
}

// normalizeText maps a missing or blank optional string to null.
func normalizeText(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
