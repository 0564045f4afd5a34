package models

type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	// MatchStatusConditional marks the second grand final before the first
	// one has been decided. It becomes pending only on a bracket reset.
	MatchStatusConditional MatchStatus = "conditional"
	MatchStatusCanceled    MatchStatus = "canceled"
)

type BracketType string

const (
	BracketWinner     BracketType = "winner"
	BracketLoser      BracketType = "loser"
	BracketGrandFinal BracketType = "grand_final"
)

type MatchResult struct {
	Player1Score int `json:"player1_score"`
	Player2Score int `json:"player2_score"`
	// WinnerID is empty for a draw (round robin / Swiss only).
	WinnerID string `json:"winner_id,omitempty"`
	Walkover bool   `json:"walkover,omitempty"`
}

// Match is created by a bracket generator and mutated only by the
// progression engine. Matches are never deleted during an active
// tournament; cancellation is a status.
type Match struct {
	ID          string      `json:"id"`
	RoundID     string      `json:"round_id"`
	RoundNumber int         `json:"round_number"`
	MatchNumber int         `json:"match_number"`
	Bracket     BracketType `json:"bracket,omitempty"`

	Player1ID *string `json:"player1_id,omitempty"`
	Player2ID *string `json:"player2_id,omitempty"`

	Status MatchStatus  `json:"status"`
	Result *MatchResult `json:"result,omitempty"`

	// NextMatchID receives the winner; LoserNextMatchID receives the loser
	// (double elimination winner bracket only).
	NextMatchID      *string `json:"next_match_id,omitempty"`
	LoserNextMatchID *string `json:"loser_next_match_id,omitempty"`

	// IsBye marks a generation-time walkover (unopposed advancement).
	IsBye bool `json:"is_bye,omitempty"`

	// VoidSlots counts feeder slots that can never be filled because the
	// feeding match was a bye. A match with one void slot completes by
	// walkover as soon as its real participant arrives.
	VoidSlots int `json:"void_slots,omitempty"`

	// Rematch flags a Swiss pairing that repeats an earlier meeting because
	// no rematch-free pairing existed.
	Rematch bool `json:"rematch,omitempty"`
}

// HasPlayer reports whether the given player occupies one of the match slots.
func (m *Match) HasPlayer(playerID string) bool {
	return (m.Player1ID != nil && *m.Player1ID == playerID) ||
		(m.Player2ID != nil && *m.Player2ID == playerID)
}

// Opponent returns the id of the other participant, or "" if the slot is
// open or the given player is not in the match.
func (m *Match) Opponent(playerID string) string {
	if m.Player1ID != nil && *m.Player1ID == playerID {
		if m.Player2ID != nil {
			return *m.Player2ID
		}
		return ""
	}
	if m.Player2ID != nil && *m.Player2ID == playerID {
		if m.Player1ID != nil {
			return *m.Player1ID
		}
	}
	return ""
}

// Decided reports whether the match has reached a terminal state.
func (m *Match) Decided() bool {
	return m.Status == MatchStatusCompleted || m.Status == MatchStatusCanceled
}

func (m *Match) clone() *Match {
	c := *m
	c.Player1ID = cloneStringPtr(m.Player1ID)
	c.Player2ID = cloneStringPtr(m.Player2ID)
	c.NextMatchID = cloneStringPtr(m.NextMatchID)
	c.LoserNextMatchID = cloneStringPtr(m.LoserNextMatchID)
	if m.Result != nil {
		r := *m.Result
		c.Result = &r
	}
	return &c
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
