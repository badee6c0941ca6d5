package handlers

import (
	"github.com/AimbotParce/SharedFlatTracker/internal/commute"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// directoryUser is the user projection exposed to participant lists and
// pickers: identity plus work location, never credentials.
type directoryUser struct {
	ID            uint     `json:"id"`
	Name          *string  `json:"name"`
	Email         string   `json:"email"`
	WorkAddress   *string  `json:"work_address"`
	WorkLatitude  *float64 `json:"work_latitude"`
	WorkLongitude *float64 `json:"work_longitude"`
}

func newDirectoryUser(u *models.User) directoryUser {
	if u == nil {
		return directoryUser{}
	}
	return directoryUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		WorkAddress:   u.WorkAddress,
		WorkLatitude:  u.WorkLatitude,
		WorkLongitude: u.WorkLongitude,
	}
}

type participantView struct {
	ID        uint                   `json:"id"`
	TrackerID uint                   `json:"trackerId"`
	UserID    uint                   `json:"userId"`
	Role      models.ParticipantRole `json:"role"`
	User      directoryUser          `json:"user"`
}

func newParticipantView(p *models.TrackerParticipant) participantView {
	return participantView{
		ID:        p.ID,
		TrackerID: p.TrackerID,
		UserID:    p.UserID,
		Role:      p.Role,
		User:      newDirectoryUser(p.User),
	}
}

type trackerView struct {
	models.Tracker
	Owner        models.UserRef    `json:"owner"`
	Participants []participantView `json:"participants"`
}

func newTrackerView(t *models.Tracker) trackerView {
	view := trackerView{
		Tracker:      *t,
		Participants: make([]participantView, 0, len(t.Participants)),
	}
	if t.Owner != nil {
		view.Owner = t.Owner.Ref()
	}
	for i := range t.Participants {
		view.Participants = append(view.Participants, newParticipantView(&t.Participants[i]))
	}
	return view
}

type commuteTimeView struct {
	ID          uint           `json:"id"`
	TimeMinutes *int           `json:"timeMinutes"`
	User        models.UserRef `json:"user"`
}

type flatView struct {
	models.Flat
	CreatedBy    models.UserRef    `json:"createdBy"`
	CommuteTimes []commuteTimeView `json:"commuteTimes"`
	Commute      commute.Summary   `json:"commute"`
}

// newFlatView joins a flat with its creator projection and the commute
// summary computed over the given user list.
func newFlatView(f *models.Flat, users []models.User) flatView {
	view := flatView{
		Flat:         *f,
		CommuteTimes: make([]commuteTimeView, 0, len(f.CommuteTimes)),
		Commute:      commute.Summarize(f.CommuteTimes, users),
	}
	if f.CreatedBy != nil {
		view.CreatedBy = f.CreatedBy.Ref()
	}
	for _, ct := range f.CommuteTimes {
		entry := commuteTimeView{ID: ct.ID, TimeMinutes: ct.TimeMinutes}
		if ct.User != nil {
			entry.User = ct.User.Ref()
		}
		view.CommuteTimes = append(view.CommuteTimes, entry)
	}
	return view
}
