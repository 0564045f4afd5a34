package models

import "time"

type Format string

const (
	FormatSingleElimination Format = "single_elimination"
	FormatDoubleElimination Format = "double_elimination"
	FormatRoundRobin        Format = "round_robin"
	FormatSwiss             Format = "swiss"
)

type TournamentStatus string

const (
	TournamentStatusSetup     TournamentStatus = "setup"
	TournamentStatusActive    TournamentStatus = "active"
	TournamentStatusCompleted TournamentStatus = "completed"
	TournamentStatusCancelled TournamentStatus = "cancelled"
)

// Scoring holds the point values awarded per match outcome. The defaults
// suit formats without draws; sports that allow draws configure Draw.
type Scoring struct {
	Win  float64 `json:"win"`
	Draw float64 `json:"draw"`
	Loss float64 `json:"loss"`
}

func DefaultScoring() Scoring {
	return Scoring{Win: 1, Draw: 0.5, Loss: 0}
}

// Tournament is the unit of mutation: every engine operation takes a
// tournament state and returns a new one.
type Tournament struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Format  Format           `json:"format"`
	Status  TournamentStatus `json:"status"`
	Players []Player         `json:"players"`
	Rounds  []*Round         `json:"rounds"`
	Matches []*Match         `json:"matches"`

	// TotalRounds bounds Swiss round generation; unused by other formats.
	TotalRounds int     `json:"total_rounds,omitempty"`
	Scoring     Scoring `json:"scoring"`
	WinnerID    *string `json:"winner_id,omitempty"`

	// Version supports optimistic concurrency control at the storage layer.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchByID returns the match with the given id, or nil.
func (t *Tournament) MatchByID(id string) *Match {
	for _, m := range t.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// RoundByID returns the round with the given id, or nil.
func (t *Tournament) RoundByID(id string) *Round {
	for _, r := range t.Rounds {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// MatchesInRound resolves a round's match ids in order.
func (t *Tournament) MatchesInRound(r *Round) []*Match {
	matches := make([]*Match, 0, len(r.MatchIDs))
	for _, id := range r.MatchIDs {
		if m := t.MatchByID(id); m != nil {
			matches = append(matches, m)
		}
	}
	return matches
}

// PlayerByID returns the participant with the given id, or nil.
func (t *Tournament) PlayerByID(id string) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// Clone deep-copies the tournament so that engine operations can fail
// without leaving the caller's state partially mutated.
func (t *Tournament) Clone() *Tournament {
	c := *t
	c.WinnerID = cloneStringPtr(t.WinnerID)
	c.Players = make([]Player, len(t.Players))
	for i, p := range t.Players {
		cp := p
		cp.Ranking = cloneStringPtr(p.Ranking)
		cp.Email = cloneStringPtr(p.Email)
		c.Players[i] = cp
	}
	c.Rounds = make([]*Round, len(t.Rounds))
	for i, r := range t.Rounds {
		c.Rounds[i] = r.clone()
	}
	c.Matches = make([]*Match, len(t.Matches))
	for i, m := range t.Matches {
		c.Matches[i] = m.clone()
	}
	return &c
}
