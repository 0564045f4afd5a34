package models

import "time"

// Player is a resolved tournament participant. Immutable once placed in a
// bracket; matches reference players by id only.
type Player struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Seed    int     `json:"seed,omitempty"`
	Ranking *string `json:"ranking,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// RegistrationCandidate exists only during the selection phase and is
// converted to a Player once selected.
type RegistrationCandidate struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email,omitempty"`
	RegisteredAt     time.Time   `json:"registered_at"`
	UnavailableDates []time.Time `json:"unavailable_dates,omitempty"`
	MaxMatchesPerDay *int        `json:"max_matches_per_day,omitempty"`
	SkillLevel       *string     `json:"skill_level,omitempty"`
}

// ToPlayer converts a selected candidate into a tournament participant.
func (c RegistrationCandidate) ToPlayer(seed int) Player {
	p := Player{
		ID:   c.ID,
		Name: c.Name,
		Seed: seed,
	}
	if c.Email != "" {
		email := c.Email
		p.Email = &email
	}
	return p
}
