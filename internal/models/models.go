package models

import "time"

// FlatStatus tracks how far a flat has progressed through the hunting
// pipeline, from first sighting to an accepted offer.
type FlatStatus string

const (
	StatusSeen          FlatStatus = "Seen"
	StatusReachedOut    FlatStatus = "ReachedOut"
	StatusAnswered      FlatStatus = "Answered"
	StatusVisitArranged FlatStatus = "VisitArranged"
	StatusVisited       FlatStatus = "Visited"
	StatusAccepted      FlatStatus = "Accepted"
)

// Statuses lists every valid pipeline state, in pipeline order.
var Statuses = []FlatStatus{
	StatusSeen,
	StatusReachedOut,
	StatusAnswered,
	StatusVisitArranged,
	StatusVisited,
	StatusAccepted,
}

// Valid reports whether s is one of the known pipeline states.
func (s FlatStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParticipantRole is the label assigned to a tracker participant. Both roles
// currently grant the same (read-only) rights; the label is stored for
// future differentiation.
type ParticipantRole string

const (
	RoleAdmin       ParticipantRole = "Admin"
	RoleParticipant ParticipantRole = "Participant"
)

// Valid reports whether r is a known role label.
func (r ParticipantRole) Valid() bool {
	return r == RoleAdmin || r == RoleParticipant
}

// User represents an account. The optional work location feeds commute
// estimation on the client side.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash  string    `gorm:"size:255" json:"-"`
	Name          *string   `gorm:"size:255" json:"name"`
	WorkAddress   *string   `gorm:"size:255" json:"work_address"`
	WorkLatitude  *float64  `json:"work_latitude"`
	WorkLongitude *float64  `json:"work_longitude"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserRef is the minimal user projection embedded in tracker, flat and
// participant responses.
type UserRef struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// Ref returns the minimal projection of u.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Tracker is a shared flat-hunting workspace. Exactly one user owns it; the
// owner is fixed at creation.
type Tracker struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Name         string               `gorm:"size:255" json:"name"`
	Description  *string              `gorm:"size:1024" json:"description"`
	OwnerID      uint                 `gorm:"index" json:"ownerId"`
	Owner        *User                `gorm:"foreignKey:OwnerID" json:"-"`
	Participants []TrackerParticipant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Flats        []Flat               `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// TrackerParticipant grants one user access to one tracker. The owner must
// never appear as a participant of their own tracker.
type TrackerParticipant struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	TrackerID uint            `gorm:"uniqueIndex:idx_tracker_user" json:"trackerId"`
	UserID    uint            `gorm:"uniqueIndex:idx_tracker_user" json:"userId"`
	Role      ParticipantRole `gorm:"size:32" json:"role"`
	User      *User           `json:"-"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Flat is a candidate dwelling logged under a tracker. All numeric fields
// are optional and, when present, non-negative.
type Flat struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	TrackerID    uint          `gorm:"index" json:"trackerId"`
	Name         string        `gorm:"size:255" json:"name"`
	Description  *string       `gorm:"size:1024" json:"description"`
	URL          *string       `gorm:"size:1024" json:"url"`
	Address      *string       `gorm:"size:512" json:"address"`
	Latitude     *float64      `json:"latitude"`
	Longitude    *float64      `json:"longitude"`
	Price        *float64      `json:"price"`
	Area         *float64      `json:"area"`
	Bedrooms     *int          `json:"bedrooms"`
	Bathrooms    *int          `json:"bathrooms"`
	Status       FlatStatus    `gorm:"size:32" json:"status"`
	CreatedByID  uint          `json:"createdById"`
	CreatedBy    *User         `gorm:"foreignKey:CreatedByID" json:"-"`
	CommuteTimes []CommuteTime `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CommuteTime is one participant's estimated commute to one flat, in
// minutes. A nil or zero value means "no data"; aggregation ignores it.
type CommuteTime struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FlatID      uint      `gorm:"index" json:"flatId"`
	UserID      uint      `gorm:"index" json:"userId"`
	TimeMinutes *int      `json:"timeMinutes"`
	User        *User     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// All returns every persisted entity, in migration order.
func All() []any {
	return []any{&User{}, &Tracker{}, &TrackerParticipant{}, &Flat{}, &CommuteTime{}}
}
