// Package scheduling assigns unscheduled matches to time slots and physical
// resources. The policy is a greedy placeholder, not a constraint solver:
// resources are cycled round-robin and start times advance in parallel
// batches. It does not validate player availability or detect conflicts
// beyond the rotation itself; treat it as the minimum contract.
package scheduling

import (
	"errors"
	"time"

	"github.com/courtside/tournament-engine/models"
)

var (
	ErrNoResources     = errors.New("at least one resource is required")
	ErrInvalidDuration = errors.New("match duration must be positive")
)

// Schedule assigns each playable match a resource and a start time. Matches
// that already happened or can never happen (completed, canceled,
// conditional, generation-time byes) are left untouched. With R resources,
// match i gets resources[i%R] and starts floor(i/R) durations after
// startDate.
func Schedule(matches []*models.Match, resources []models.Resource, startDate time.Time, matchDuration time.Duration) ([]models.ScheduledMatch, error) {
	if len(resources) == 0 {
		return nil, ErrNoResources
	}
	if matchDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	scheduled := make([]models.ScheduledMatch, 0, len(matches))
	slot := 0
	for _, m := range matches {
		if !schedulable(m) {
			continue
		}
		resource := resources[slot%len(resources)]
		batch := slot / len(resources)
		scheduled = append(scheduled, models.ScheduledMatch{
			Match:       *m,
			ScheduledAt: startDate.Add(time.Duration(batch) * matchDuration),
			ResourceID:  resource.ID,
		})
		slot++
	}

	return scheduled, nil
}

func schedulable(m *models.Match) bool {
	switch m.Status {
	case models.MatchStatusCompleted, models.MatchStatusCanceled, models.MatchStatusConditional:
		return false
	}
	return !m.IsBye
}
