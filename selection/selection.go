// Package selection scores registration candidates and partitions them into
// selected, waitlisted and rejected sets under a capacity bound. The
// function is pure and deterministic: identical inputs always produce the
// identical partition.
package selection

import (
	"fmt"
	"sort"
	"time"

	"github.com/courtside/tournament-engine/models"
)

// Config holds the scoring constants. They are deliberately configuration,
// not literals, so organizers can tune them without touching engine logic.
type Config struct {
	// BaseScore is every candidate's starting score.
	BaseScore int `json:"base_score"`
	// UnavailableDatePenalty is subtracted per declared unavailable date
	// that falls inside the tournament window.
	UnavailableDatePenalty int `json:"unavailable_date_penalty"`
	// LowAvailabilityPenalty is subtracted when a candidate caps their
	// matches per day below MinMatchesPerDay.
	LowAvailabilityPenalty int `json:"low_availability_penalty"`
	// RejectionThreshold rejects candidates scoring below it regardless of
	// capacity.
	RejectionThreshold int `json:"rejection_threshold"`
	MinMatchesPerDay   int `json:"min_matches_per_day"`
	// WindowDays is the length of the tournament window starting at the
	// start date; unavailable dates outside it carry no penalty.
	WindowDays int `json:"window_days"`
}

func DefaultConfig() Config {
	return Config{
		BaseScore:              100,
		UnavailableDatePenalty: 10,
		LowAvailabilityPenalty: 15,
		RejectionThreshold:     50,
		MinMatchesPerDay:       2,
		WindowDays:             3,
	}
}

// Rejection pairs a rejected candidate with a human-readable reason.
type Rejection struct {
	Candidate models.RegistrationCandidate `json:"candidate"`
	Reason    string                       `json:"reason"`
}

// Result partitions the candidate pool. Waitlist order reflects the same
// ranking as selection, so waitlisted candidates can be promoted in order
// when a selected participant drops out.
type Result struct {
	Selected []models.RegistrationCandidate `json:"selected"`
	Waitlist []models.RegistrationCandidate `json:"waitlist"`
	Rejected []Rejection                    `json:"rejected"`
}

// Select scores all candidates, rejects those below the threshold, and
// fills up to capacity from the rest ordered by score descending with
// earlier registration winning ties.
func Select(candidates []models.RegistrationCandidate, capacity int, startDate time.Time, cfg Config) Result {
	type scored struct {
		candidate models.RegistrationCandidate
		score     int
	}

	result := Result{
		Selected: []models.RegistrationCandidate{},
		Waitlist: []models.RegistrationCandidate{},
		Rejected: []Rejection{},
	}

	eligible := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := Score(c, startDate, cfg)
		if score < cfg.RejectionThreshold {
			result.Rejected = append(result.Rejected, Rejection{
				Candidate: c,
				Reason: fmt.Sprintf("availability score %d is below the required minimum of %d",
					score, cfg.RejectionThreshold),
			})
			continue
		}
		eligible = append(eligible, scored{candidate: c, score: score})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].score != eligible[j].score {
			return eligible[i].score > eligible[j].score
		}
		return eligible[i].candidate.RegisteredAt.Before(eligible[j].candidate.RegisteredAt)
	})

	if capacity < 0 {
		capacity = 0
	}
	for i, s := range eligible {
		if i < capacity {
			result.Selected = append(result.Selected, s.candidate)
		} else {
			result.Waitlist = append(result.Waitlist, s.candidate)
		}
	}

	return result
}

// Score computes a single candidate's availability score, floored at zero.
func Score(c models.RegistrationCandidate, startDate time.Time, cfg Config) int {
	score := cfg.BaseScore

	windowStart := truncateToDay(startDate)
	windowEnd := windowStart.AddDate(0, 0, cfg.WindowDays)
	for _, d := range c.UnavailableDates {
		day := truncateToDay(d)
		if !day.Before(windowStart) && day.Before(windowEnd) {
			score -= cfg.UnavailableDatePenalty
		}
	}

	if c.MaxMatchesPerDay != nil && *c.MaxMatchesPerDay < cfg.MinMatchesPerDay {
		score -= cfg.LowAvailabilityPenalty
	}

	if score < 0 {
		score = 0
	}
	return score
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
