// Package flats manages candidate flat records: creation, partial updates
// and listing. It owns the field-level validation rules; tracker-level
// authorization happens before any of these calls.
package flats

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/httperr"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// Service reads and writes flat records for trackers.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create validates the submitted form and inserts a new flat under
// trackerID. Name, status and creator are required; optional numeric
// fields default to null when absent or blank. Commute estimates arrive as
// commuteTime_<userId> fields; only strictly positive integers are
// persisted, everything else is silently dropped.
func (s *Service) Create(ctx context.Context, trackerID uint, form url.Values) (*models.Flat, error) {
	name := FieldFrom(form, "name")
	status := models.FlatStatus(form.Get("status"))
	createdByField := FieldFrom(form, "createdById")

	if !name.Present() || name.Blank() || status == "" || !createdByField.Present() {
		return nil, httperr.Validation("name, status, and creator are required")
	}
	if !status.Valid() {
		return nil, httperr.Validation("invalid status value")
	}

	createdByID, err := parseID(createdByField.Value())
	if err != nil {
		return nil, httperr.Validation("invalid creator ID")
	}
	if err := s.checkUserExists(ctx, createdByID, "creator not found"); err != nil {
		return nil, err
	}

	flat := models.Flat{
		TrackerID:   trackerID,
		Name:        name.Value(),
		Description: optionalText(form, "description"),
		URL:         optionalText(form, "url"),
		Address:     optionalText(form, "address"),
		Status:      status,
		CreatedByID: createdByID,
	}

	for key, dst := range map[string]**float64{
		"price": &flat.Price,
		"area":  &flat.Area,
	} {
		value, err := optionalFloat(form, key)
		if err != nil {
			return nil, err
		}
		*dst = value
	}
	// Coordinates are signed; only the listing numerics are non-negative.
	for key, dst := range map[string]**float64{
		"latitude":  &flat.Latitude,
		"longitude": &flat.Longitude,
	} {
		value, err := optionalCoordinate(form, key)
		if err != nil {
			return nil, err
		}
		*dst = value
	}
	for key, dst := range map[string]**int{
		"bedrooms":  &flat.Bedrooms,
		"bathrooms": &flat.Bathrooms,
	} {
		value, err := optionalInt(form, key)
		if err != nil {
			return nil, err
		}
		*dst = value
	}

	commuteTimes, err := s.commuteTimesFrom(ctx, form)
	if err != nil {
		return nil, err
	}
	flat.CommuteTimes = commuteTimes

	if err := s.db.WithContext(ctx).Create(&flat).Error; err != nil {
		return nil, fmt.Errorf("creating flat: %w", err)
	}
	return s.byID(ctx, flat.ID)
}

// Update applies a partial update to a flat. Only fields present in the
// form change; a blank optional field clears to null, a blank or invalid
// numeric value is a validation failure, and a form with no recognized
// fields is rejected outright. The flat must belong to trackerID.
func (s *Service) Update(ctx context.Context, trackerID, flatID uint, form url.Values) (*models.Flat, error) {
	var flat models.Flat
	err := s.db.WithContext(ctx).
		Where("id = ? AND tracker_id = ?", flatID, trackerID).
		First(&flat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFound("flat not found")
	}
	if err != nil {
		return nil, fmt.Errorf("loading flat %d: %w", flatID, err)
	}

	updates := map[string]any{}

	if f := FieldFrom(form, "name"); f.Present() {
		if f.Blank() {
			return nil, httperr.Validation("name cannot be empty")
		}
		updates["name"] = f.Value()
	}
	for _, key := range []string{"description", "url", "address"} {
		if f := FieldFrom(form, key); f.Present() {
			if f.Blank() {
				updates[key] = nil
			} else {
				updates[key] = f.Value()
			}
		}
	}
	for _, key := range []string{"price", "area"} {
		if f := FieldFrom(form, key); f.Present() {
			if f.Blank() {
				updates[key] = nil
				continue
			}
			value, err := strconv.ParseFloat(f.Value(), 64)
			if err != nil || value < 0 {
				return nil, httperr.Validation("invalid %s value", key)
			}
			updates[key] = value
		}
	}
	for _, key := range []string{"bedrooms", "bathrooms"} {
		if f := FieldFrom(form, key); f.Present() {
			if f.Blank() {
				updates[key] = nil
				continue
			}
			value, err := strconv.Atoi(f.Value())
			if err != nil || value < 0 {
				return nil, httperr.Validation("invalid %s value", key)
			}
			updates[key] = value
		}
	}
	if f := FieldFrom(form, "status"); f.Present() {
		status := models.FlatStatus(f.Value())
		if !status.Valid() {
			return nil, httperr.Validation("invalid status value")
		}
		updates["status"] = status
	}
	if f := FieldFrom(form, "createdById"); f.Present() {
		createdByID, err := parseID(f.Value())
		if err != nil {
			return nil, httperr.Validation("invalid creator ID")
		}
		if err := s.checkUserExists(ctx, createdByID, "creator not found"); err != nil {
			return nil, err
		}
		updates["created_by_id"] = createdByID
	}

	if len(updates) == 0 {
		return nil, httperr.Validation("no fields to update")
	}

	if err := s.db.WithContext(ctx).Model(&flat).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("updating flat %d: %w", flatID, err)
	}
	return s.byID(ctx, flat.ID)
}

// List returns the tracker's flats, newest first, with their creator and
// commute rows loaded.
func (s *Service) List(ctx context.Context, trackerID uint) ([]models.Flat, error) {
	var flats []models.Flat
	err := s.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CommuteTimes.User").
		Where("tracker_id = ?", trackerID).
		Order("created_at DESC, id DESC").
		Find(&flats).Error
	if err != nil {
		return nil, fmt.Errorf("listing flats for tracker %d: %w", trackerID, err)
	}
	return flats, nil
}

func (s *Service) byID(ctx context.Context, id uint) (*models.Flat, error) {
	var flat models.Flat
	err := s.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("CommuteTimes.User").
		First(&flat, id).Error
	if err != nil {
		return nil, fmt.Errorf("loading flat %d: %w", id, err)
	}
	return &flat, nil
}

func (s *Service) checkUserExists(ctx context.Context, id uint, missingMsg string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return fmt.Errorf("checking user %d: %w", id, err)
	}
	if count == 0 {
		return httperr.Validation("%s", missingMsg)
	}
	return nil
}

// commuteTimesFrom collects commuteTime_<userId> fields for every known
// user. Zero, blank and unparseable values mean "no data" and produce no
// row at all.
func (s *Service) commuteTimesFrom(ctx context.Context, form url.Values) ([]models.CommuteTime, error) {
	var userIDs []uint
	if err := s.db.WithContext(ctx).Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var times []models.CommuteTime
	for _, userID := range userIDs {
		f := FieldFrom(form, fmt.Sprintf("commuteTime_%d", userID))
		if !f.Present() || f.Blank() {
			continue
		}
		minutes, err := strconv.Atoi(f.Value())
		if err != nil || minutes <= 0 {
			continue
		}
		times = append(times, models.CommuteTime{UserID: userID, TimeMinutes: &minutes})
	}
	return times, nil
}

// optionalText maps an absent or blank text field to null.
func optionalText(form url.Values, key string) *string {
	f := FieldFrom(form, key)
	if !f.Present() || f.Blank() {
		return nil
	}
	value := f.Value()
	return &value
}

// optionalFloat maps an absent or blank numeric field to null and rejects
// unparseable or negative values.
func optionalFloat(form url.Values, key string) (*float64, error) {
	f := FieldFrom(form, key)
	if !f.Present() || f.Blank() {
		return nil, nil
	}
	value, err := strconv.ParseFloat(f.Value(), 64)
	if err != nil || value < 0 {
		return nil, httperr.Validation("invalid %s value", key)
	}
	return &value, nil
}

// optionalCoordinate is optionalFloat without the sign restriction.
func optionalCoordinate(form url.Values, key string) (*float64, error) {
	f := FieldFrom(form, key)
	if !f.Present() || f.Blank() {
		return nil, nil
	}
	value, err := strconv.ParseFloat(f.Value(), 64)
	if err != nil {
		return nil, httperr.Validation("invalid %s value", key)
	}
	return &value, nil
}

func optionalInt(form url.Values, key string) (*int, error) {
	f := FieldFrom(form, key)
	if !f.Present() || f.Blank() {
		return nil, nil
	}
	value, err := strconv.Atoi(f.Value())
	if err != nil || value < 0 {
		return nil, httperr.Validation("invalid %s value", key)
	}
	return &value, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
