// Package commute computes the per-flat commute aggregation shown next to
// each candidate flat: the average across participants plus a per-user
// breakdown. It is pure; callers load the rows.
package commute

import (
	"math"

	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// Entry pairs one user with their commute estimate for a flat.
type Entry struct {
	User    models.UserRef `json:"user"`
	Minutes int            `json:"minutes"`
}

// Summary is the aggregated commute view for one flat. When HasData is
// false the flat has no usable estimates and no average is reported; zero
// is never used as a stand-in.
type Summary struct {
	HasData        bool    `json:"hasData"`
	AverageMinutes int     `json:"averageMinutes,omitempty"`
	Breakdown      []Entry `json:"breakdown,omitempty"`
}

// Summarize aggregates the commute rows of a flat over the given users.
// Entries with nil or non-positive minutes carry no data and are ignored.
// The breakdown follows the order of users; the average is the arithmetic
// mean of the valid entries, rounded to the nearest whole minute.
func Summarize(times []models.CommuteTime, users []models.User) Summary {
	byUser := make(map[uint]int, len(times))
	for _, t := range times {
		if t.TimeMinutes == nil || *t.TimeMinutes <= 0 {
			continue
		}
		byUser[t.UserID] = *t.TimeMinutes
	}
	if len(byUser) == 0 {
		return Summary{}
	}

	sum := 0
	for _, minutes := range byUser {
		sum += minutes
	}

	breakdown := make([]Entry, 0, len(byUser))
	for i := range users {
		if minutes, ok := byUser[users[i].ID]; ok {
			breakdown = append(breakdown, Entry{User: users[i].Ref(), Minutes: minutes})
		}
	}

	return Summary{
		HasData:        true,
		AverageMinutes: int(math.Round(float64(sum) / float64(len(byUser)))),
		Breakdown:      breakdown,
	}
}
